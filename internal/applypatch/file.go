package applypatch

import (
	"fmt"
	"strings"

	"unipatch/internal/textfile"
	"unipatch/internal/unidiff"
)

// FileOptions controls on-disk application.
type FileOptions struct {
	Options
	DryRun bool // Compute the result without writing it.
	Backup bool // Copy the original to a .orig sibling before writing.
}

// FileOutcome is the result of applying a patch to a file.
type FileOutcome struct {
	Outcome
	Path       string
	BackupPath string        // Set when a backup was made.
	Written    bool          // False for dry runs, rejected applies, and zero-hunk-applied results.
	Result     string        // Content that was (or would be) written; empty when no hunk applied.
	Stats      unidiff.Stats // Added/removed line counts over the patch's hunks.
}

// ApplyFile reads path, applies patch, and writes the result back through a temp file and atomic rename. The file is written only when at least one hunk
// applied and DryRun is off. A backup, when requested, is copied exactly once before the write and is retained even if the write fails.
//
// Errors from reading, writing, or backing up surface unchanged; strict-mode conflicts surface as ErrConflict with the file untouched.
func ApplyFile(path string, patch unidiff.Patch, opts FileOptions) (FileOutcome, error) {
	fo := FileOutcome{Path: path, Stats: unidiff.CountHunks(patch.Hunks)}

	f, err := textfile.Read(path)
	if err != nil {
		return fo, err
	}

	res, err := Apply(f.Lines, patch, opts.Options)
	fo.Outcome = res
	if err != nil {
		return fo, err
	}
	if res.Applied == 0 {
		return fo, nil
	}

	fo.Result = f.Join(res.Lines)
	if opts.DryRun {
		return fo, nil
	}

	if opts.Backup {
		backupPath, err := textfile.Backup(path)
		if err != nil {
			return fo, err
		}
		fo.BackupPath = backupPath
	}
	if err := textfile.Write(path, fo.Result); err != nil {
		return fo, err
	}
	fo.Written = true
	return fo, nil
}

// Summary returns a human-readable per-hunk accounting for display to the user (or the invoking agent).
func (o FileOutcome) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d/%d hunks applied (+%d -%d)", o.Path, o.Applied, o.Applied+o.Failed, o.Stats.Added, o.Stats.Removed)
	if o.BackupPath != "" {
		fmt.Fprintf(&b, ", backup at %s", o.BackupPath)
	}
	if !o.Written {
		b.WriteString(", not written")
	}
	for i, hr := range o.Hunks {
		b.WriteByte('\n')
		switch hr.Status {
		case HunkApplied:
			fmt.Fprintf(&b, "  hunk %d: applied at line %d", i+1, hr.MatchedAt+1)
			if hr.FuzzyOffset != 0 {
				fmt.Fprintf(&b, " (offset %+d)", hr.FuzzyOffset)
			}
		case HunkConflict:
			fmt.Fprintf(&b, "  hunk %d: conflict", i+1)
		}
	}
	return b.String()
}
