package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frherrer/atomic-builder/internal/codec"
	"github.com/frherrer/atomic-builder/internal/config"
	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/parser"
	"github.com/frherrer/atomic-builder/internal/samples"
	"github.com/frherrer/atomic-builder/internal/session"
)

// sourceFlags selects the test a command works on.
type sourceFlags struct {
	sample string
	test   int
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sample, "sample", "", fmt.Sprintf("use a bundled sample (%s)", strings.Join(samples.Names, ", ")))
	cmd.Flags().IntVarP(&f.test, "test", "t", 0, "1-based test number within a multi-test file")
}

// openSession loads the selected test into a new Session.
func (f *sourceFlags) openSession(args []string, cfg *config.Config) (*session.Session, error) {
	doc, err := f.load(args)
	if err != nil {
		return nil, err
	}
	s := session.New(session.Options{
		CheckEnumerations: cfg.Checks.Enumerations,
		CheckShellSyntax:  cfg.Checks.ShellSyntax,
	})
	if err := s.Load(doc, false); err != nil {
		return nil, err
	}
	return s, nil
}

func (f *sourceFlags) load(args []string) (domain.Document, error) {
	switch {
	case f.sample != "" && len(args) > 0:
		return domain.Document{}, fmt.Errorf("pass either a file or --sample, not both")
	case f.sample != "":
		log.Debugf("Loading sample %q", f.sample)
		return samples.Load(f.sample)
	case len(args) == 0:
		return domain.Document{}, fmt.Errorf("a YAML file or --sample is required")
	}

	src, err := readSource(args[0])
	if err != nil {
		return domain.Document{}, err
	}

	index := f.test - 1
	if f.test == 0 {
		if src.Len() > 1 {
			return domain.Document{}, fmt.Errorf("%s holds %d tests, select one with --test:\n%s",
				args[0], src.Len(), describeSource(src))
		}
		index = 0
	}
	log.Debugf("Loading test %d of %s", index+1, args[0])
	return src.Load(index)
}

// describeSource lists the tests of src, headed by the bundle title.
func describeSource(src *codec.Source) string {
	var b strings.Builder
	if title := src.Title(); title != "" {
		fmt.Fprintf(&b, "%s\n", title)
	}
	for i, name := range src.Names() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	return b.String()
}

// readSource reads a YAML file directly and pulls embedded atomic blocks out
// of Markdown files.
func readSource(path string) (*codec.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return codec.NewReader(parser.NewDefaultRegistry()).Read(path)
	}
	return codec.ReadFile(path)
}
