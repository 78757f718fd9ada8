package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-builder/internal/config"
	"github.com/frherrer/atomic-builder/internal/export"
	"github.com/frherrer/atomic-builder/internal/normalize"
	"github.com/frherrer/atomic-builder/internal/session"
	tmpl "github.com/frherrer/atomic-builder/internal/template"
)

var renderFlags struct {
	source   sourceFlags
	format   string
	template string
	output   string
	save     bool
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a test as canonical atomic YAML, Markdown or HTML",
	Long: `Loads one test from a YAML file (a list of tests or a technique file with
atomic_tests) or a bundled sample, normalizes it and prints the result.
Validation findings are printed as warnings and never block the output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s, err := renderFlags.source.openSession(args, cfg)
		if err != nil {
			return err
		}
		return runRender(cmd, cfg, s)
	},
}

func init() {
	renderFlags.source.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFlags.format, "format", "f", "", "output format: yaml, markdown or html (default from config)")
	renderCmd.Flags().StringVar(&renderFlags.template, "template", "", "Markdown template name")
	renderCmd.Flags().StringVarP(&renderFlags.output, "output", "o", "", "write to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderFlags.save, "save", false, "write into the output directory using a name derived from the test name")
	rootCmd.AddCommand(renderCmd)
}

// newExporter wires the renderer and template engine from cfg.
func newExporter(cfg *config.Config) (*export.Exporter, error) {
	engine, err := tmpl.NewEngine(cfg.Templates.Directory, cfg.Templates.Default)
	if err != nil {
		return nil, fmt.Errorf("failed to create template engine: %w", err)
	}
	return export.NewExporter(normalize.NewRenderer(cfg.Output.Indent), engine), nil
}

// runRender emits the session's document and reports its findings.
func runRender(cmd *cobra.Command, cfg *config.Config, s *session.Session) error {
	formatName := renderFlags.format
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	x, err := newExporter(cfg)
	if err != nil {
		return err
	}

	doc := s.Document()
	printFindings(cmd.ErrOrStderr(), "Some of the required fields are missing.", s.Report().Unique())

	switch {
	case renderFlags.save:
		path, err := x.WriteFile(doc, format, renderFlags.template, cfg.Output.Directory)
		if err != nil {
			return err
		}
		log.Infof("Writing: %s", path)
	case renderFlags.output != "":
		out, err := x.Render(doc, format, renderFlags.template)
		if err != nil {
			return err
		}
		log.Infof("Writing: %s", renderFlags.output)
		if err := os.WriteFile(renderFlags.output, out, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderFlags.output, err)
		}
	default:
		out, err := x.Render(doc, format, renderFlags.template)
		if err != nil {
			return err
		}
		if format == export.FormatYAML && normalize.IsEmpty(out) {
			log.Warn("Fill blanks to generate YAML content")
		}
		if err := writeOutput(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}

	s.MarkSaved()
	return nil
}
