package unidiff

import "unipatch/internal/diff"

// DefaultContext is the number of context lines included on each side of a change.
const DefaultContext = 3

// Assemble groups an edit script into hunks, each bounded by up to contextSize unchanged lines. Change clusters separated by at most 2*contextSize unchanged
// lines merge into one hunk (their context windows would overlap). An all-equal script yields nil.
func Assemble(edits []diff.LineEdit, contextSize int) []Hunk {
	if contextSize < 0 {
		contextSize = DefaultContext
	}

	var hunks []Hunk
	i := 0
	for i < len(edits) {
		if edits[i].Op == diff.OpEqual {
			i++
			continue
		}

		// Extend the cluster: absorb equal runs of at most 2*contextSize lines when another change follows.
		last := i
		j := i + 1
		for j < len(edits) {
			if edits[j].Op != diff.OpEqual {
				last = j
				j++
				continue
			}
			k := j
			for k < len(edits) && edits[k].Op == diff.OpEqual {
				k++
			}
			if k < len(edits) && k-j <= 2*contextSize {
				j = k
				continue
			}
			break
		}

		start := i - contextSize
		if start < 0 {
			start = 0
		}
		end := last + contextSize
		if end > len(edits)-1 {
			end = len(edits) - 1
		}

		hunks = append(hunks, buildHunk(edits, start, end))
		i = end + 1
	}
	return hunks
}

func buildHunk(edits []diff.LineEdit, start, end int) Hunk {
	var h Hunk
	for idx := start; idx <= end; idx++ {
		e := edits[idx]
		switch e.Op {
		case diff.OpEqual:
			h.Lines = append(h.Lines, HunkLine{Kind: LineContext, Text: e.Text})
			h.OldLines++
			h.NewLines++
		case diff.OpDelete:
			h.Lines = append(h.Lines, HunkLine{Kind: LineRemoved, Text: e.Text})
			h.OldLines++
		case diff.OpInsert:
			h.Lines = append(h.Lines, HunkLine{Kind: LineAdded, Text: e.Text})
			h.NewLines++
		}
	}
	h.OldStart = startLine(edits, start, end, func(e diff.LineEdit) int { return e.OldIndex })
	h.NewStart = startLine(edits, start, end, func(e diff.LineEdit) int { return e.NewIndex })
	return h
}

// startLine finds the 1-based start of a hunk on one side. When the hunk has no lines on that side, it falls back to the nearest preceding line on that side
// (0 at the top of the file), which is the "insert after" position unified diffs record for empty ranges.
func startLine(edits []diff.LineEdit, start, end int, index func(diff.LineEdit) int) int {
	for idx := start; idx <= end; idx++ {
		if n := index(edits[idx]); n >= 0 {
			return n + 1
		}
	}
	for idx := start - 1; idx >= 0; idx-- {
		if n := index(edits[idx]); n >= 0 {
			return n + 1
		}
	}
	return 0
}
