package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateFlags struct {
	source sourceFlags
	strict bool
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a test against the required-field rules and argument constraints",
	Long: `Loads one test and reports every missing required field, duplicate or blank
argument name, unknown enumeration value and shell syntax error. Findings are
advisory; pass --strict to exit non-zero when any are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s, err := validateFlags.source.openSession(args, cfg)
		if err != nil {
			return err
		}

		findings := s.Report().Unique()
		if len(findings) == 0 {
			printOK(cmd.OutOrStdout(), "No findings.")
			return nil
		}

		printFindings(cmd.OutOrStdout(), "Some of the required fields are missing.", findings)
		if validateFlags.strict {
			return fmt.Errorf("%d finding(s)", len(findings))
		}
		return nil
	},
}

func init() {
	validateFlags.source.register(validateCmd)
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "exit non-zero when findings exist")
	rootCmd.AddCommand(validateCmd)
}
