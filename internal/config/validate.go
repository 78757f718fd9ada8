package config

import (
	"fmt"
	"strings"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Output validation
	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	switch cfg.Output.Format {
	case "yaml", "markdown", "html":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be one of: yaml, markdown, html (got %q)", cfg.Output.Format))
	}
	if cfg.Output.Indent < 2 || cfg.Output.Indent > 9 {
		errs = append(errs, fmt.Sprintf("output.indent must be between 2 and 9 (got %d)", cfg.Output.Indent))
	}

	// Lint validation
	if len(cfg.Lint.Include) == 0 {
		errs = append(errs, "lint.include must not be empty")
	}
	for _, p := range cfg.Lint.Include {
		if !hasAnySuffix(p, ".yaml", ".yml", ".md", ".markdown", "*") {
			errs = append(errs, fmt.Sprintf("lint.include pattern %q must select .yaml, .yml or markdown files", p))
		}
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
