package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Output: OutputConfig{
			Directory: ".",
			Format:    "yaml",
			Indent:    2,
		},
		Templates: TemplateConfig{
			Default: "atomic_markdown",
		},
		Lint: LintConfig{
			Include:   []string{"*.yaml", "*.yml"},
			Exclude:   []string{"vendor/**", "node_modules/**", ".git/**"},
			Recursive: &recursive,
		},
		Checks: ChecksConfig{
			Enumerations: true,
			ShellSyntax:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
