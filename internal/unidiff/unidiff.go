// Package unidiff holds the hunk model for unified diffs: assembling hunks from an edit script, serializing them to unified-diff text, parsing such text back,
// and counting changes.
//
// Format contract (Format output, Parse input):
//
//	--- a/{oldLabel}
//	+++ b/{newLabel}
//	@@ -{oldStart},{oldLines} +{newStart},{newLines} @@
//	 {context line}
//	-{removed line}
//	+{added line}
//
// One header pair per patch; each @@ line is immediately followed by its content lines, prefixed with exactly one of ' ', '-', '+'. Parse additionally tolerates
// omitted counts ("@@ -3 +3 @@", count 1), missing a/ b/ label prefixes, git preamble lines before the first header, and the "\" no-newline marker.
//
// Parse does not cross-check the header counts against the body; callers that need that guarantee run Patch.Validate explicitly.
package unidiff

// LineKind classifies a line within a hunk.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

// HunkLine is one content line of a hunk, without a trailing line separator.
type HunkLine struct {
	Kind LineKind
	Text string
}

// Hunk is a contiguous block of change plus surrounding context.
//
// Invariants:
//   - OldLines == count of context+removed lines; NewLines == count of context+added lines.
//   - OldStart/NewStart are 1-based line numbers in the old/new file. A hunk with OldLines == 0 records in OldStart the old line it inserts after (0 at the top of
//     the file), matching unified-diff convention; NewStart behaves symmetrically when NewLines == 0.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []HunkLine
}

// Patch is a parsed or assembled single-file unified diff. Hunks are ordered ascending by OldStart.
type Patch struct {
	OldLabel string
	NewLabel string
	Hunks    []Hunk
}
