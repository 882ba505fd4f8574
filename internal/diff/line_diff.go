package diff

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines diffs old lines to new lines, returning an ordered minimal edit script.
//
// Equal inputs yield all-OpEqual output; an empty old side yields all OpInsert; an empty new side yields all OpDelete. Two empty inputs yield nil.
func DiffLines(oldLines, newLines []string) []LineEdit {
	if len(oldLines) == 0 && len(newLines) == 0 {
		return nil
	}

	// Encode each distinct line as a rune so the Myers diff runs over lines rather than characters. Same trick as diffmatchpatch.DiffLinesToRunes, done
	// directly over the line slices so no join/split round-trip is needed. The surrogate block is skipped: diffmatchpatch round-trips runes through strings,
	// and surrogates do not survive that.
	lineToRune := make(map[string]rune)
	runeToLine := make(map[rune]string)
	next := rune(0)
	encode := func(lines []string) []rune {
		out := make([]rune, 0, len(lines))
		for _, line := range lines {
			r, ok := lineToRune[line]
			if !ok {
				r = next
				next++
				if next == 0xD800 {
					next = 0xE000
				}
				lineToRune[line] = r
				runeToLine[r] = line
			}
			out = append(out, r)
		}
		return out
	}
	rOld := encode(oldLines)
	rNew := encode(newLines)

	dmp := diffmatchpatch.New()
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	var edits []LineEdit
	oldIdx := 0
	newIdx := 0
	for _, d := range lineDiffs {
		for _, r := range d.Text {
			text := runeToLine[r]
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				edits = append(edits, LineEdit{Op: OpEqual, Text: text, OldIndex: oldIdx, NewIndex: newIdx})
				oldIdx++
				newIdx++
			case diffmatchpatch.DiffDelete:
				edits = append(edits, LineEdit{Op: OpDelete, Text: text, OldIndex: oldIdx, NewIndex: -1})
				oldIdx++
			case diffmatchpatch.DiffInsert:
				edits = append(edits, LineEdit{Op: OpInsert, Text: text, OldIndex: -1, NewIndex: newIdx})
				newIdx++
			}
		}
	}

	if err := validateEdits(oldLines, newLines, edits); err != nil {
		panic(fmt.Errorf("DiffLines: validate failed with %v", err))
	}

	return edits
}
