package domain

import (
	"slices"
	"strings"
)

// Platforms lists the supported platform identifiers in canonical
// (lower-cased) form.
var Platforms = []string{
	"windows",
	"macos",
	"linux",
	"office-365",
	"azure-ad",
	"google-workspace",
	"saas",
	"iaas",
	"containers",
	"iaas:gcp",
	"iaas:azure",
	"iaas:aws",
}

// ExecutorNames lists the interpreters a test or its dependencies can use.
var ExecutorNames = []string{
	"powershell",
	"command prompt",
	"bash",
	"sh",
}

// ArgumentTypes lists the accepted input argument types.
var ArgumentTypes = []string{
	"string",
	"url",
	"path",
	"integer",
}

// NormalizePlatform returns the canonical form of a platform identifier.
func NormalizePlatform(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

// NormalizePlatforms lower-cases every entry and drops duplicates while
// keeping the first occurrence order.
func NormalizePlatforms(ps []string) []string {
	out := make([]string, 0, len(ps))
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		p = NormalizePlatform(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// IsPlatform reports whether p names a supported platform (case-insensitive).
func IsPlatform(p string) bool {
	return slices.Contains(Platforms, NormalizePlatform(p))
}

// IsExecutorName reports whether name is a known executor.
func IsExecutorName(name string) bool {
	return slices.Contains(ExecutorNames, name)
}

// IsArgumentType reports whether t is a known argument type.
func IsArgumentType(t string) bool {
	return slices.Contains(ArgumentTypes, t)
}
