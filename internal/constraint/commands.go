package constraint

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// CheckCommands parses the shell commands of sh and bash tests and reports
// syntax errors. Dependencies run under dependency_executor_name, falling
// back to the attack executor when unset. Other interpreters are skipped.
func CheckCommands(doc domain.Document) []string {
	var errs []string

	if lang, ok := shellVariant(doc.Executor.Name); ok {
		errs = appendSyntaxError(errs, "Attack command", domain.StringValue(doc.Executor.Command), lang)
		errs = appendSyntaxError(errs, "Cleanup command", domain.StringValue(doc.Executor.CleanupCommand), lang)
	}

	depExecutor := domain.StringValue(doc.DependencyExecutorName)
	if depExecutor == "" {
		depExecutor = doc.Executor.Name
	}
	if lang, ok := shellVariant(depExecutor); ok {
		for i, dep := range doc.Dependencies {
			errs = appendSyntaxError(errs, fmt.Sprintf("Dependency %d check command", i+1), dep.PrereqCommand, lang)
			errs = appendSyntaxError(errs, fmt.Sprintf("Dependency %d install command", i+1), domain.StringValue(dep.GetPrereqCommand), lang)
		}
	}
	return errs
}

// CheckShellSyntax parses script in the given shell dialect.
func CheckShellSyntax(script string, lang syntax.LangVariant) error {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(lang))
	_, err := parser.Parse(strings.NewReader(script), "")
	return err
}

func appendSyntaxError(errs []string, label, script string, lang syntax.LangVariant) []string {
	if strings.TrimSpace(script) == "" {
		return errs
	}
	// #{arg} placeholders are substituted before execution.
	if err := CheckShellSyntax(maskPlaceholders(script), lang); err != nil {
		return append(errs, fmt.Sprintf("%s has a shell syntax error: %v", label, err))
	}
	return errs
}

func shellVariant(executor string) (syntax.LangVariant, bool) {
	switch executor {
	case "bash":
		return syntax.LangBash, true
	case "sh":
		return syntax.LangPOSIX, true
	}
	return 0, false
}

// maskPlaceholders replaces every #{name} with a plain word of equal length
// so that error positions stay meaningful.
func maskPlaceholders(script string) string {
	var b strings.Builder
	for {
		start := strings.Index(script, "#{")
		if start < 0 {
			b.WriteString(script)
			return b.String()
		}
		end := strings.Index(script[start:], "}")
		if end < 0 {
			b.WriteString(script)
			return b.String()
		}
		b.WriteString(script[:start])
		b.WriteString(strings.Repeat("x", end+1))
		script = script[start+end+1:]
	}
}
