// Package diff computes a per-line minimal edit script between an "old" and a "new" sequence of lines.
//
// Representation: DiffLines returns an ordered slice of LineEdit ops. Each op is OpEqual, OpInsert, or OpDelete and carries the line's text plus its index in the
// old and/or new sequence.
//
// Invariants:
//   - Taking the Text of OpEqual+OpDelete ops in order reconstructs the old sequence exactly.
//   - Taking the Text of OpEqual+OpInsert ops in order reconstructs the new sequence exactly.
//   - OldIndex is the 0-based position in the old sequence (-1 for OpInsert); NewIndex is the 0-based position in the new sequence (-1 for OpDelete).
//
// Granularity: DiffLines produces a minimal edit script (Myers, via go-diff), so duplicated or reordered lines do not inflate the script with spurious
// delete/insert pairs the way a naive two-index walk would. Consumers should rely on the invariants above rather than any particular grouping of changes.
//
// Lines are compared whole; none of the ops carry intra-line detail. Texts never include the line separator: callers split and rejoin with their own EOL policy.
package diff
