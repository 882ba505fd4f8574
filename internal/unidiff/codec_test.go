package unidiff

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"unipatch/internal/diff"
)

func TestFormat_Golden(t *testing.T) {
	edits := diff.DiffLines([]string{"a", "b", "c"}, []string{"a", "x", "c"})
	p := Patch{OldLabel: "old.txt", NewLabel: "new.txt", Hunks: Assemble(edits, 3)}

	want := "--- a/old.txt\n" +
		"+++ b/new.txt\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+x\n" +
		" c\n"
	require.Equal(t, want, Format(p))
}

func TestFormat_EmptyPatch(t *testing.T) {
	require.Equal(t, "", Format(Patch{OldLabel: "old.txt", NewLabel: "new.txt"}))
}

func TestParse_RoundTrip(t *testing.T) {
	old := []string{"package main", "", "func main() {", "\tprintln(\"hi\")", "}", "", "// trailer"}
	new := []string{"package main", "", "func main() {", "\tprintln(\"hello\")", "}", "", "// trailer", "// more"}

	p := Patch{OldLabel: "main.go", NewLabel: "main.go", Hunks: Assemble(diff.DiffLines(old, new), 3)}
	text := Format(p)

	got, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, p, got)
	require.NoError(t, got.Validate())
}

func TestParse_Tolerances(t *testing.T) {
	t.Run("labels without a/b prefixes", func(t *testing.T) {
		p, err := Parse("--- old.txt\n+++ new.txt\n@@ -1,1 +1,1 @@\n-a\n+b\n")
		require.NoError(t, err)
		require.Equal(t, "old.txt", p.OldLabel)
		require.Equal(t, "new.txt", p.NewLabel)
	})

	t.Run("labels with timestamps", func(t *testing.T) {
		p, err := Parse("--- a/old.txt\t2026-01-02 10:00:00\n+++ b/new.txt\t2026-01-02 10:00:01\n@@ -1,1 +1,1 @@\n-a\n+b\n")
		require.NoError(t, err)
		require.Equal(t, "old.txt", p.OldLabel)
		require.Equal(t, "new.txt", p.NewLabel)
	})

	t.Run("omitted counts default to 1", func(t *testing.T) {
		p, err := Parse("@@ -3 +3 @@\n-a\n+b\n")
		require.NoError(t, err)
		require.Len(t, p.Hunks, 1)
		require.Equal(t, Hunk{OldStart: 3, OldLines: 1, NewStart: 3, NewLines: 1, Lines: []HunkLine{
			{Kind: LineRemoved, Text: "a"},
			{Kind: LineAdded, Text: "b"},
		}}, p.Hunks[0])
	})

	t.Run("git preamble and no-newline marker", func(t *testing.T) {
		text := "diff --git a/f.txt b/f.txt\n" +
			"index 1234567..89abcde 100644\n" +
			"--- a/f.txt\n" +
			"+++ b/f.txt\n" +
			"@@ -1,1 +1,1 @@\n" +
			"-a\n" +
			"+b\n" +
			"\\ No newline at end of file\n"
		p, err := Parse(text)
		require.NoError(t, err)
		require.Len(t, p.Hunks, 1)
		require.Len(t, p.Hunks[0].Lines, 2)
	})

	t.Run("hunks sorted by OldStart", func(t *testing.T) {
		text := "--- a/f\n+++ b/f\n" +
			"@@ -10,1 +10,1 @@\n-x\n+y\n" +
			"@@ -1,1 +1,1 @@\n-a\n+b\n"
		p, err := Parse(text)
		require.NoError(t, err)
		require.Equal(t, 1, p.Hunks[0].OldStart)
		require.Equal(t, 10, p.Hunks[1].OldStart)
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "prose only", text: "this is not a diff\nat all\n"},
		{name: "headers but no hunks", text: "--- a/f.txt\n+++ b/f.txt\n"},
		{name: "bad content prefix", text: "@@ -1,1 +1,1 @@\n-a\n*b\n"},
		{name: "malformed hunk header", text: "@@ -x,1 +1,1 @@\n-a\n+b\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			require.Error(t, err)
			require.True(t, IsInvalidFormat(err), "want ErrInvalidFormat, got %v", err)
		})
	}
}

func TestValidate_CountMismatch(t *testing.T) {
	p, err := Parse("@@ -1,5 +1,5 @@\n-a\n+b\n")
	require.NoError(t, err)
	require.Error(t, p.Validate())
}

// Patches produced by go-difflib must parse cleanly; it is the closest thing the ecosystem has to a reference emitter.
func TestParse_DifflibInterop(t *testing.T) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines("a\nb\nc\n"),
		B:        difflib.SplitLines("a\nx\nc\n"),
		FromFile: "old.txt",
		ToFile:   "new.txt",
		Context:  3,
	})
	require.NoError(t, err)

	p, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, "old.txt", p.OldLabel)
	require.Equal(t, "new.txt", p.NewLabel)
	require.Len(t, p.Hunks, 1)
	require.Equal(t, []HunkLine{
		{Kind: LineContext, Text: "a"},
		{Kind: LineRemoved, Text: "b"},
		{Kind: LineAdded, Text: "x"},
		{Kind: LineContext, Text: "c"},
	}, p.Hunks[0].Lines)
	require.NoError(t, p.Validate())
}
