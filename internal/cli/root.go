package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-builder/internal/config"
)

const defaultConfigFile = "atomicbuilder.yaml"

var (
	cfgFile string
	verbose bool
	log     = logrus.New()
)

// rootCmd is the base command for atomicbuilder.
var rootCmd = &cobra.Command{
	Use:   "atomicbuilder",
	Short: "Build, validate and normalize Atomic Red Team test definitions",
	Long: `atomicbuilder assembles atomic test definitions, checks them against the
required-field rules, and emits the canonical atomic YAML.

Validation findings are advisory: output is always produced and findings are
printed as warnings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		log.SetLevel(logrus.InfoLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// loadConfig loads and validates the configuration. The default config file
// is optional; an explicitly named one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.Load(cfgFile, !explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if !verbose && cfg.Logging.Level != "" {
		level, err := logrus.ParseLevel(cfg.Logging.Level)
		if err == nil {
			log.SetLevel(level)
		}
	}
	log.Debugf("Loaded config: %+v", cfg)
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and exits with its status.
func Main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
