package diff

import "fmt"

// validateEdits checks the edit-script invariants against the inputs and returns an error on the first violation.
func validateEdits(oldLines, newLines []string, edits []LineEdit) error {
	oldIdx := 0
	newIdx := 0
	for i, e := range edits {
		switch e.Op {
		case OpEqual:
			if e.OldIndex != oldIdx || e.NewIndex != newIdx {
				return fmt.Errorf("edit[%d]: OpEqual indices (%d,%d) want (%d,%d)", i, e.OldIndex, e.NewIndex, oldIdx, newIdx)
			}
			if oldIdx >= len(oldLines) || oldLines[oldIdx] != e.Text {
				return fmt.Errorf("edit[%d]: OpEqual text does not match old line %d", i, oldIdx)
			}
			if newIdx >= len(newLines) || newLines[newIdx] != e.Text {
				return fmt.Errorf("edit[%d]: OpEqual text does not match new line %d", i, newIdx)
			}
			oldIdx++
			newIdx++
		case OpDelete:
			if e.OldIndex != oldIdx || e.NewIndex != -1 {
				return fmt.Errorf("edit[%d]: OpDelete indices (%d,%d) want (%d,-1)", i, e.OldIndex, e.NewIndex, oldIdx)
			}
			if oldIdx >= len(oldLines) || oldLines[oldIdx] != e.Text {
				return fmt.Errorf("edit[%d]: OpDelete text does not match old line %d", i, oldIdx)
			}
			oldIdx++
		case OpInsert:
			if e.OldIndex != -1 || e.NewIndex != newIdx {
				return fmt.Errorf("edit[%d]: OpInsert indices (%d,%d) want (-1,%d)", i, e.OldIndex, e.NewIndex, newIdx)
			}
			if newIdx >= len(newLines) || newLines[newIdx] != e.Text {
				return fmt.Errorf("edit[%d]: OpInsert text does not match new line %d", i, newIdx)
			}
			newIdx++
		default:
			return fmt.Errorf("edit[%d]: unknown op %d", i, e.Op)
		}
	}
	if oldIdx != len(oldLines) {
		return fmt.Errorf("edits cover %d of %d old lines", oldIdx, len(oldLines))
	}
	if newIdx != len(newLines) {
		return fmt.Errorf("edits cover %d of %d new lines", newIdx, len(newLines))
	}
	return nil
}
