package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the tests held by a YAML or Markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), describeSource(src))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
