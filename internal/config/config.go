package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Output    OutputConfig   `yaml:"output"`
	Templates TemplateConfig `yaml:"templates"`
	Lint      LintConfig     `yaml:"lint"`
	Checks    ChecksConfig   `yaml:"checks"`
	Logging   LoggingConfig  `yaml:"logging"`
}

type OutputConfig struct {
	Directory string `yaml:"directory"`
	Format    string `yaml:"format"`
	Indent    int    `yaml:"indent"`
}

type TemplateConfig struct {
	Directory string `yaml:"directory"`
	Default   string `yaml:"default"`
}

type LintConfig struct {
	Include   []string `yaml:"include"`
	Exclude   []string `yaml:"exclude"`
	Recursive *bool    `yaml:"recursive"` // pointer to distinguish unset from false
	// FailOnFindings turns advisory findings into a non-zero exit code.
	FailOnFindings bool `yaml:"fail_on_findings"`
}

type ChecksConfig struct {
	Enumerations bool `yaml:"enumerations"`
	ShellSyntax  bool `yaml:"shell_syntax"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file over DefaultConfig. A missing file
// at the default path is not an error when allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, domain.NewError("config", "", 0, "failed to render config", err)
	}
	return out, nil
}
