package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"unipatch/internal/applypatch"
	"unipatch/internal/simplelogger"
	"unipatch/internal/unidiff"
)

func runApply(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("unipatch apply", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	patchPath := flags.StringP("patch", "p", "", "read the patch from this file (default: stdin)")
	reverse := flags.BoolP("reverse", "R", false, "apply the patch in reverse, undoing it")
	fuzzy := flags.Bool("fuzzy", true, "search for drifted context near each hunk's recorded position")
	window := flags.Int("window", applypatch.DefaultSearchWindow, "lines above and below to search when fuzzy matching")
	strict := flags.Bool("strict", false, "disable fuzzy matching; reject the patch on any conflict")
	dryRun := flags.BoolP("dry-run", "n", false, "report what would change without writing")
	backup := flags.BoolP("backup", "b", false, "copy the original to <target>.orig before writing")
	colorMode := flags.String("color", "auto", "colorize terminal output: auto, always, never")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, "unipatch apply: expected exactly one arg: <target>")
		return 2
	}
	target := flags.Arg(0)

	patchText, err := readPatchText(*patchPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "unipatch apply: %v\n", err)
		return 1
	}
	patch, err := unidiff.Parse(patchText)
	if err != nil {
		fmt.Fprintf(stderr, "unipatch apply: %v\n", err)
		return 1
	}

	opts := applypatch.FileOptions{
		Options: applypatch.Options{
			Reverse:      *reverse,
			Fuzzy:        *fuzzy && !*strict,
			SearchWindow: *window,
		},
		DryRun: *dryRun,
		Backup: *backup,
	}

	out, err := applypatch.ApplyFile(target, patch, opts)
	simplelogger.Log("apply %s: applied=%d failed=%d written=%v err=%v", target, out.Applied, out.Failed, out.Written, err)
	if err != nil {
		fmt.Fprintf(stderr, "unipatch apply: %v\n", err)
		if len(out.Hunks) > 0 {
			fmt.Fprintln(stderr, out.Summary())
		}
		return 1
	}

	if *dryRun {
		fmt.Fprintln(stdout, unidiff.Render(patch, useColor(*colorMode, stdout), terminalWidth(stdout)))
	}
	fmt.Fprintln(stdout, out.Summary())

	if out.Applied == 0 && out.Failed > 0 {
		return 1
	}
	return 0
}

func readPatchText(path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
