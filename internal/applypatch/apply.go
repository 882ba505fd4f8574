// Package applypatch applies parsed unified-diff hunks to a line sequence or a file on disk.
//
// Each hunk is matched at its recorded position first; with fuzzy matching enabled, the expected lines are searched within a bounded offset window around that
// position, smallest offset first. Hunks that cannot be matched are conflicts: fatal in strict mode (nothing is written), accumulated into the outcome in fuzzy
// mode (the write proceeds with whatever hunks succeeded). Reverse mode swaps the roles of added and removed lines to undo a previously applied patch.
package applypatch

import (
	"errors"
	"fmt"

	"unipatch/internal/unidiff"
)

// DefaultSearchWindow is how many lines the fuzzy search ranges above and below a hunk's recorded position.
const DefaultSearchWindow = 50

// Options controls in-memory application.
type Options struct {
	Reverse      bool
	Fuzzy        bool
	SearchWindow int // 0 means DefaultSearchWindow.
}

// HunkStatus is the fate of one hunk.
type HunkStatus int

const (
	HunkApplied HunkStatus = iota
	HunkConflict
)

// HunkResult records one hunk's fate.
type HunkResult struct {
	Status      HunkStatus
	MatchedAt   int // 0-based line where the expected block matched; -1 on conflict.
	FuzzyOffset int // Offset from the recorded position; 0 for an exact match.
}

// Outcome is the aggregate result of applying a patch to a line sequence.
type Outcome struct {
	Hunks   []HunkResult
	Applied int
	Failed  int
	Lines   []string // Resulting lines; nil when Apply returned an error.
}

// ErrConflict indicates one or more hunks could not be matched with fuzzy matching disabled.
var ErrConflict = errors.New("patch conflict")

// IsConflict reports whether err (as returned from Apply or ApplyFile) is a strict-mode hunk conflict rather than an I/O or format problem.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func conflictError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrConflict, err)
}

// Apply applies patch to lines. Hunks are processed in ascending OldStart order, with a running offset carrying the net length delta of prior hunks.
//
// In strict mode (Fuzzy off) the first conflict aborts with an ErrConflict-wrapped error and Outcome.Lines is nil; the input is never mutated either way
// (the result is a fresh slice).
func Apply(lines []string, patch unidiff.Patch, opts Options) (Outcome, error) {
	window := opts.SearchWindow
	if window <= 0 {
		window = DefaultSearchWindow
	}

	out := Outcome{Lines: append([]string(nil), lines...)}
	offset := 0
	for i, h := range patch.Hunks {
		expected, replacement := hunkLines(h, opts.Reverse)

		recorded := h.OldStart
		if opts.Reverse {
			recorded = h.NewStart
		}
		pos := recorded - 1 + offset
		if len(expected) == 0 {
			// OldStart of an insert-only hunk records the line it inserts after.
			pos = recorded + offset
		}

		matchedAt, fuzzyOffset, ok := findMatch(out.Lines, expected, pos, opts.Fuzzy, window)
		if !ok {
			out.Hunks = append(out.Hunks, HunkResult{Status: HunkConflict, MatchedAt: -1})
			out.Failed++
			if !opts.Fuzzy {
				out.Lines = nil
				return out, conflictError(fmt.Errorf("hunk %d: expected lines not found at line %d", i+1, pos+1))
			}
			continue
		}

		out.Lines = splice(out.Lines, matchedAt, len(expected), replacement)
		offset += len(replacement) - len(expected)
		out.Hunks = append(out.Hunks, HunkResult{Status: HunkApplied, MatchedAt: matchedAt, FuzzyOffset: fuzzyOffset})
		out.Applied++
	}
	return out, nil
}

// hunkLines derives the lines a hunk expects to find (context+removed) and the lines it substitutes (context+added). Reverse swaps added and removed.
func hunkLines(h unidiff.Hunk, reverse bool) (expected, replacement []string) {
	for _, ln := range h.Lines {
		kind := ln.Kind
		if reverse {
			switch kind {
			case unidiff.LineAdded:
				kind = unidiff.LineRemoved
			case unidiff.LineRemoved:
				kind = unidiff.LineAdded
			}
		}
		switch kind {
		case unidiff.LineContext:
			expected = append(expected, ln.Text)
			replacement = append(replacement, ln.Text)
		case unidiff.LineRemoved:
			expected = append(expected, ln.Text)
		case unidiff.LineAdded:
			replacement = append(replacement, ln.Text)
		}
	}
	return expected, replacement
}

// findMatch locates expected within lines, starting at pos. With fuzzy, offsets -window..+window are tried smallest absolute value first, negative before
// positive on ties. An empty expected block matches trivially at pos clamped into bounds.
func findMatch(lines, expected []string, pos int, fuzzy bool, window int) (matchedAt, fuzzyOffset int, ok bool) {
	if len(expected) == 0 {
		if pos < 0 {
			pos = 0
		}
		if pos > len(lines) {
			pos = len(lines)
		}
		return pos, 0, true
	}
	if matchAt(lines, expected, pos) {
		return pos, 0, true
	}
	if !fuzzy {
		return 0, 0, false
	}
	for off := 1; off <= window; off++ {
		if matchAt(lines, expected, pos-off) {
			return pos - off, -off, true
		}
		if matchAt(lines, expected, pos+off) {
			return pos + off, off, true
		}
	}
	return 0, 0, false
}

func matchAt(lines, expected []string, pos int) bool {
	if pos < 0 || pos+len(expected) > len(lines) {
		return false
	}
	for i := range expected {
		if lines[pos+i] != expected[i] {
			return false
		}
	}
	return true
}

func splice(lines []string, pos, n int, replacement []string) []string {
	out := make([]string, 0, len(lines)-n+len(replacement))
	out = append(out, lines[:pos]...)
	out = append(out, replacement...)
	out = append(out, lines[pos+n:]...)
	return out
}
