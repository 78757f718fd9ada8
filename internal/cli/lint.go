package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-builder/internal/lint"
	"github.com/frherrer/atomic-builder/internal/scanner"
)

var lintCmd = &cobra.Command{
	Use:   "lint [dir...]",
	Short: "Check every atomic test file under one or more directories",
	Long:  `Scans directories for YAML and Markdown files matching lint.include, loads every test they hold and reports findings per test.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		recursive := true
		if cfg.Lint.Recursive != nil {
			recursive = *cfg.Lint.Recursive
		}
		linter := lint.NewLinter(scanner.NewScanner(recursive), log)

		summary, err := linter.Lint(dirs, cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range summary.Results {
			switch {
			case r.Err != nil:
				printError(out, "%s: %v", r.File, r.Err)
			case len(r.Findings) > 0:
				printFindings(out, fmt.Sprintf("%s#%d %s", r.File, r.Index, r.Name), r.Findings)
			}
		}

		failed := summary.Failed()
		if failed == 0 {
			printOK(out, "%d file(s), %d test(s), no findings.", summary.Files, summary.Tests)
			return nil
		}
		fmt.Fprintf(out, "%d file(s), %d test(s), %d with findings.\n", summary.Files, summary.Tests, failed)
		if cfg.Lint.FailOnFindings {
			return fmt.Errorf("%d test(s) with findings", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
