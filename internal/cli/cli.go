// Package cli implements the unipatch command line: "diff" generates a unified patch between two files, "apply" applies a patch to a file.
package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const usage = `usage: unipatch <command> [flags]

Commands:
  diff <old> <new>   generate a unified diff between two files
  apply <target>     apply a unified diff to a file
  help               show this help

Run "unipatch <command> --help" for command flags.`

// Run executes the unipatch command line and returns a process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	switch args[0] {
	case "diff":
		return runDiff(args[1:], stdout, stderr)
	case "apply":
		return runApply(args[1:], stdin, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unipatch: unknown command %q\n%s\n", args[0], usage)
		return 2
	}
}

// useColor resolves a --color mode ("auto", "always", "never") against the output's terminal-ness.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns w's display width in columns, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
