package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-builder/internal/samples"
)

var samplesCmd = &cobra.Command{
	Use:   "samples [name]",
	Short: "List bundled samples or print one as canonical YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range samples.Names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src := sourceFlags{sample: args[0]}
		s, err := src.openSession(nil, cfg)
		if err != nil {
			return err
		}
		return runRender(cmd, cfg, s)
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
