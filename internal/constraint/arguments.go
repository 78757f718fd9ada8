package constraint

import (
	"strings"

	"github.com/frherrer/atomic-builder/internal/domain"
)

const (
	MsgDuplicateArgumentNames = "Argument names must be unique."
	MsgEmptyArgumentNames     = "Argument names cannot be empty."
)

// CheckArguments reports at most one message for duplicate argument names
// and one for blank names. Names are compared after trimming, case-sensitive.
func CheckArguments(args []domain.Argument) []string {
	var errs []string
	if HasDuplicateNames(args) {
		errs = append(errs, MsgDuplicateArgumentNames)
	}
	if HasEmptyNames(args) {
		errs = append(errs, MsgEmptyArgumentNames)
	}
	return errs
}

// HasDuplicateNames reports whether two arguments share a trimmed name.
func HasDuplicateNames(args []domain.Argument) bool {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		name := strings.TrimSpace(a.Name)
		if seen[name] {
			return true
		}
		seen[name] = true
	}
	return false
}

// HasEmptyNames reports whether any argument name is blank after trimming.
func HasEmptyNames(args []domain.Argument) bool {
	for _, a := range args {
		if strings.TrimSpace(a.Name) == "" {
			return true
		}
	}
	return false
}
