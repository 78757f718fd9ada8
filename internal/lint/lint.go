package lint

import (
	"github.com/sirupsen/logrus"

	"github.com/frherrer/atomic-builder/internal/codec"
	"github.com/frherrer/atomic-builder/internal/config"
	"github.com/frherrer/atomic-builder/internal/constraint"
	"github.com/frherrer/atomic-builder/internal/domain"
	"github.com/frherrer/atomic-builder/internal/parser"
	"github.com/frherrer/atomic-builder/internal/scanner"
	"github.com/frherrer/atomic-builder/internal/validate"
)

// Result holds the findings for one test of one file. Err is set when the
// file or test could not be loaded at all.
type Result struct {
	File     string
	Index    int // 1-based
	Name     string
	Findings []string
	Err      error
}

// OK reports whether the test loaded and produced no findings.
func (r Result) OK() bool {
	return r.Err == nil && len(r.Findings) == 0
}

// Summary aggregates the results of a lint run.
type Summary struct {
	Files   int
	Tests   int
	Results []Result
}

// Failed counts results that are not OK.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Linter checks every atomic test file found under a set of directories.
type Linter interface {
	Lint(dirs []string, cfg *config.Config) (Summary, error)
}

// DefaultLinter implements Linter by wiring the scanner, the codec and the
// checkers together.
type DefaultLinter struct {
	scanner scanner.Scanner
	reader  *codec.Reader
	log     *logrus.Logger
}

// NewLinter creates a DefaultLinter reading YAML and Markdown files.
func NewLinter(s scanner.Scanner, log *logrus.Logger) *DefaultLinter {
	return &DefaultLinter{
		scanner: s,
		reader:  codec.NewReader(parser.NewDefaultRegistry()),
		log:     log,
	}
}

// Lint runs the pipeline: scan -> decode -> transform -> check.
// Unreadable directories are skipped with a warning; per-file load
// failures are recorded in the summary rather than aborting the run.
func (l *DefaultLinter) Lint(dirs []string, cfg *config.Config) (Summary, error) {
	var summary Summary

	var allFiles []string
	for _, dir := range dirs {
		l.log.Debugf("Scanning directory: %s", dir)
		files, err := l.scanner.Scan(dir, cfg.Lint.Include, cfg.Lint.Exclude)
		if err != nil {
			l.log.Warnf("Failed to scan directory %s: %v", dir, err)
			continue
		}
		allFiles = append(allFiles, files...)
	}

	if len(allFiles) == 0 {
		l.log.Warn("No atomic test files found")
		return summary, nil
	}
	l.log.Infof("Found %d atomic test file(s)", len(allFiles))

	for _, path := range allFiles {
		summary.Files++
		l.log.Debugf("Processing: %s", path)

		src, err := l.reader.Read(path)
		if err != nil {
			l.log.Warnf("Skipping %s: %v", path, err)
			summary.Results = append(summary.Results, Result{File: path, Err: err})
			continue
		}

		names := src.Names()
		for i := 0; i < src.Len(); i++ {
			summary.Tests++
			res := Result{File: path, Index: i + 1, Name: names[i]}

			doc, err := src.Load(i)
			if err != nil {
				res.Err = err
			} else {
				res.Findings = Check(doc, cfg.Checks)
			}
			l.log.Debugf("%s#%d %q: %d finding(s)", path, i+1, res.Name, len(res.Findings))
			summary.Results = append(summary.Results, res)
		}
	}

	l.log.Infof("Checked %d test(s), %d with findings", summary.Tests, summary.Failed())
	return summary, nil
}

// Check runs every checker against doc and merges their findings.
func Check(doc domain.Document, checks config.ChecksConfig) []string {
	report := validate.NewReport()
	report.Set(validate.ChannelValidation, validate.Document(doc))
	report.Set(validate.ChannelArguments, constraint.CheckArguments(doc.InputArguments))
	if checks.Enumerations {
		report.Set(validate.ChannelEnumerations, constraint.CheckEnumerations(doc))
	}
	if checks.ShellSyntax {
		report.Set(validate.ChannelCommands, constraint.CheckCommands(doc))
	}
	return report.Unique()
}
