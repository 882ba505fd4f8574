package unidiff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unipatch/internal/diff"
)

func TestAssemble_SingleChange(t *testing.T) {
	edits := diff.DiffLines([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	hunks := Assemble(edits, 3)

	require.Len(t, hunks, 1)
	h := hunks[0]
	require.Equal(t, 1, h.OldStart)
	require.Equal(t, 3, h.OldLines)
	require.Equal(t, 1, h.NewStart)
	require.Equal(t, 3, h.NewLines)
	require.Equal(t, []HunkLine{
		{Kind: LineContext, Text: "a"},
		{Kind: LineRemoved, Text: "b"},
		{Kind: LineAdded, Text: "x"},
		{Kind: LineContext, Text: "c"},
	}, h.Lines)
}

func TestAssemble_PureAddition(t *testing.T) {
	edits := diff.DiffLines(nil, []string{"hello"})
	hunks := Assemble(edits, 3)

	require.Len(t, hunks, 1)
	h := hunks[0]
	require.Equal(t, 0, h.OldStart)
	require.Equal(t, 0, h.OldLines)
	require.Equal(t, 1, h.NewStart)
	require.Equal(t, 1, h.NewLines)
	require.Equal(t, []HunkLine{{Kind: LineAdded, Text: "hello"}}, h.Lines)
}

func TestAssemble_EmptyDiff(t *testing.T) {
	edits := diff.DiffLines([]string{"a", "b"}, []string{"a", "b"})
	require.Nil(t, Assemble(edits, 3))
	require.Nil(t, Assemble(nil, 3))
}

// Two changes separated by exactly 2*contextSize unchanged lines share overlapping context windows and must land in one hunk; one more line of separation
// splits them.
func TestAssemble_GapMergePolicy(t *testing.T) {
	t.Run("gap of 2C merges", func(t *testing.T) {
		old := []string{"a", "b", "c", "d", "e", "f", "g"}
		new := []string{"a", "B", "c", "d", "E", "f", "g"}
		hunks := Assemble(diff.DiffLines(old, new), 1)

		require.Len(t, hunks, 1)
		h := hunks[0]
		require.Equal(t, 1, h.OldStart)
		require.Equal(t, 6, h.OldLines)
		require.Equal(t, 6, h.NewLines)
	})

	t.Run("gap of 2C+1 splits", func(t *testing.T) {
		old := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		new := []string{"a", "B", "c", "d", "e", "F", "g", "h"}
		hunks := Assemble(diff.DiffLines(old, new), 1)

		require.Len(t, hunks, 2)
		require.Equal(t, 1, hunks[0].OldStart)
		require.Equal(t, 3, hunks[0].OldLines)
		require.Equal(t, 5, hunks[1].OldStart)
		require.Equal(t, 3, hunks[1].OldLines)
	})
}

func TestAssemble_DeleteAtEndOfFile(t *testing.T) {
	old := []string{"a", "b", "c"}
	new := []string{"a", "b"}
	hunks := Assemble(diff.DiffLines(old, new), 1)

	require.Len(t, hunks, 1)
	h := hunks[0]
	require.Equal(t, 2, h.OldStart)
	require.Equal(t, 2, h.OldLines)
	require.Equal(t, 2, h.NewStart)
	require.Equal(t, 1, h.NewLines)
}
