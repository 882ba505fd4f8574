package textfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJoin(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []string
	}{
		{name: "empty", content: "", lines: nil},
		{name: "lf with final newline", content: "a\nb\n", lines: []string{"a", "b"}},
		{name: "lf without final newline", content: "a\nb", lines: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", lines: []string{"a", "b"}},
		{name: "blank lines", content: "a\n\nb\n", lines: []string{"a", "", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Decode(tc.content)
			require.Equal(t, tc.lines, f.Lines)
			require.Equal(t, tc.content, f.Join(f.Lines), "decode/join must round-trip")
		})
	}
}

func TestJoin_GrownFromEmptyGetsFinalNewline(t *testing.T) {
	f := Decode("")
	require.Equal(t, "hello\n", f.Join([]string{"hello"}))
}

func TestJoin_PreservesCRLF(t *testing.T) {
	f := Decode("a\r\nb\r\n")
	require.Equal(t, "a\r\nx\r\n", f.Join([]string{"a", "x"}))
}

func TestReadWrite(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o600))

	f, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, f.Lines)

	require.NoError(t, Write(path, "three\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "three\n", string(data))

	// Original permissions survive the rename.
	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	// No temp droppings left behind.
	entries, err := os.ReadDir(td)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBackup(t *testing.T) {
	td := t.TempDir()
	path := filepath.Join(td, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("original\n"), 0o644))

	backupPath, err := Backup(path)
	require.NoError(t, err)
	require.Equal(t, path+".orig", backupPath)

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	require.Equal(t, "original\n", string(data))
}
