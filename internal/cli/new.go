package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-builder/internal/session"
)

var newFlags struct {
	name        string
	description string
	platforms   []string
	executor    string
	command     string
	cleanup     string
	elevation   bool
	args        []string
	depExecutor string
	deps        []string
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Assemble a test from flags and render it",
	Long: `Builds a test field by field from flags, then renders it like the render
command. Arguments are given as name:type:default:description and
dependencies as description|check command|install command.`,
	Example: `  atomicbuilder new --name "Hostname Discovery" --description "desc" \
    --platform windows --executor "command prompt" --command hostname`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s := session.New(session.Options{
			CheckEnumerations: cfg.Checks.Enumerations,
			CheckShellSyntax:  cfg.Checks.ShellSyntax,
		})
		if err := buildFromFlags(s); err != nil {
			return err
		}
		if !s.Updated() {
			log.Warn("No fields given; the test is empty")
		}
		return runRender(cmd, cfg, s)
	},
}

func init() {
	f := newCmd.Flags()
	f.StringVar(&newFlags.name, "name", "", "test name")
	f.StringVar(&newFlags.description, "description", "", "test description")
	f.StringSliceVar(&newFlags.platforms, "platform", nil, "supported platform (repeatable)")
	f.StringVar(&newFlags.executor, "executor", "", "attack executor: powershell, command prompt, bash or sh")
	f.StringVar(&newFlags.command, "command", "", "attack command")
	f.StringVar(&newFlags.cleanup, "cleanup", "", "cleanup command")
	f.BoolVar(&newFlags.elevation, "elevation-required", false, "the attack needs elevated privileges")
	f.StringArrayVar(&newFlags.args, "arg", nil, "input argument name:type:default:description (repeatable)")
	f.StringVar(&newFlags.depExecutor, "dependency-executor", "", "executor for dependency commands")
	f.StringArrayVar(&newFlags.deps, "dependency", nil, "dependency description|check command|install command (repeatable)")
	f.StringVarP(&renderFlags.format, "format", "f", "", "output format: yaml, markdown or html (default from config)")
	f.StringVarP(&renderFlags.output, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(newCmd)
}

// buildFromFlags applies the flags to s through the same edits an
// interactive editor would make.
func buildFromFlags(s *session.Session) error {
	if newFlags.name != "" {
		s.SetName(newFlags.name)
	}
	if newFlags.description != "" {
		s.SetDescription(newFlags.description)
	}
	if len(newFlags.platforms) > 0 {
		s.SetPlatforms(newFlags.platforms...)
	}
	if newFlags.executor != "" {
		s.SetExecutorName(newFlags.executor)
	}
	if newFlags.command != "" {
		s.SetCommand(newFlags.command)
	}
	if newFlags.cleanup != "" {
		s.SetCleanupCommand(newFlags.cleanup)
	}
	if newFlags.elevation {
		s.SetElevationRequired(true)
	}

	// Add* prepends, so walk backwards to keep flag order.
	for i := len(newFlags.args) - 1; i >= 0; i-- {
		parts := pad(strings.SplitN(newFlags.args[i], ":", 4), 4)
		s.AddArgument()
		fields := []string{session.ArgumentName, session.ArgumentType, session.ArgumentDefault, session.ArgumentDescription}
		for j, v := range parts {
			if err := s.UpdateArgument(0, fields[j], v); err != nil {
				return fmt.Errorf("--arg %q: %w", newFlags.args[i], err)
			}
		}
	}
	for i := len(newFlags.deps) - 1; i >= 0; i-- {
		parts := pad(strings.SplitN(newFlags.deps[i], "|", 3), 3)
		s.AddDependency()
		fields := []string{session.DependencyDescription, session.DependencyPrereqCommand, session.DependencyGetPrereqCommand}
		for j, v := range parts {
			if err := s.UpdateDependency(0, fields[j], v); err != nil {
				return fmt.Errorf("--dependency %q: %w", newFlags.deps[i], err)
			}
		}
	}
	if newFlags.depExecutor != "" {
		s.SetDependencyExecutorName(newFlags.depExecutor)
	}
	return nil
}

func pad(parts []string, n int) []string {
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}
