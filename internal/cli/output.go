package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	okColor      = color.New(color.FgGreen)
	headingColor = color.New(color.Bold)
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
}

// printFindings lists advisory findings as warnings. Nothing is printed
// when there are none.
func printFindings(w io.Writer, heading string, findings []string) {
	if len(findings) == 0 {
		return
	}
	headingColor.Fprintln(w, heading)
	for _, f := range findings {
		warningColor.Fprintf(w, "  - %s\n", f)
	}
}

func printError(w io.Writer, format string, args ...interface{}) {
	errorColor.Fprintf(w, format+"\n", args...)
}

func printOK(w io.Writer, format string, args ...interface{}) {
	okColor.Fprintf(w, format+"\n", args...)
}

func writeOutput(w io.Writer, out []byte) error {
	_, err := w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
