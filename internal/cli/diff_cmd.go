package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"unipatch/internal/diff"
	"unipatch/internal/simplelogger"
	"unipatch/internal/textfile"
	"unipatch/internal/unidiff"
)

func runDiff(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("unipatch diff", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	contextSize := flags.IntP("context", "C", unidiff.DefaultContext, "unchanged lines shown around each change")
	output := flags.StringP("output", "o", "", "write the patch to this file instead of stdout")
	labelOld := flags.String("label-old", "", "label for the old side (default: the old path)")
	labelNew := flags.String("label-new", "", "label for the new side (default: the new path)")
	colorMode := flags.String("color", "auto", "colorize terminal output: auto, always, never")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() != 2 {
		fmt.Fprintln(stderr, "unipatch diff: expected exactly two args: <old> <new>")
		return 2
	}
	oldPath := flags.Arg(0)
	newPath := flags.Arg(1)

	oldFile, err := textfile.Read(oldPath)
	if err != nil {
		fmt.Fprintf(stderr, "unipatch diff: %v\n", err)
		return 1
	}
	newFile, err := textfile.Read(newPath)
	if err != nil {
		fmt.Fprintf(stderr, "unipatch diff: %v\n", err)
		return 1
	}

	patch := unidiff.Patch{
		OldLabel: orDefault(*labelOld, oldPath),
		NewLabel: orDefault(*labelNew, newPath),
		Hunks:    unidiff.Assemble(diff.DiffLines(oldFile.Lines, newFile.Lines), *contextSize),
	}
	stats := unidiff.CountHunks(patch.Hunks)
	simplelogger.Log("diff %s %s: %d hunks, +%d -%d", oldPath, newPath, len(patch.Hunks), stats.Added, stats.Removed)

	if *output != "" {
		if err := textfile.Write(*output, unidiff.Format(patch)); err != nil {
			fmt.Fprintf(stderr, "unipatch diff: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "wrote %s: %d hunks (+%d -%d)\n", *output, len(patch.Hunks), stats.Added, stats.Removed)
		return 0
	}

	if len(patch.Hunks) == 0 {
		return 0
	}
	if useColor(*colorMode, stdout) {
		fmt.Fprintln(stdout, unidiff.Render(patch, true, terminalWidth(stdout)))
	} else {
		fmt.Fprint(stdout, unidiff.Format(patch))
	}
	return 0
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
