package diff

// Op is an operation from old lines to new lines.
type Op int

// Operations from old lines to new lines.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// LineEdit is a single step of an edit script between two line sequences.
//
// Index semantics:
//   - OpEqual: OldIndex and NewIndex are both set.
//   - OpInsert: the line exists only in the new sequence; OldIndex is -1.
//   - OpDelete: the line exists only in the old sequence; NewIndex is -1.
type LineEdit struct {
	Op       Op     // Operation for this line (OpEqual, OpInsert, or OpDelete).
	Text     string // Line content without a trailing line separator.
	OldIndex int    // 0-based index in the old sequence; -1 for OpInsert.
	NewIndex int    // 0-based index in the new sequence; -1 for OpDelete.
}
