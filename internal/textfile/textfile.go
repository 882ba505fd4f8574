// Package textfile reads and writes whole text files as line slices, preserving the original newline flavor and final-newline state. Writes go through a
// sibling temp file and an atomic rename.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is the decoded content of a text file.
type File struct {
	Lines           []string // Lines without separators; empty file decodes to zero lines.
	Newline         string   // "\n" or "\r\n", detected on read.
	HadFinalNewline bool
}

// Read loads path as a File. CRLF content is normalized to lines with Newline recording the original separator. A missing file surfaces the underlying
// fs.ErrNotExist via %w.
func Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(string(data)), nil
}

// Decode splits raw file content into a File.
func Decode(content string) File {
	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
		content = strings.ReplaceAll(content, "\r\n", "\n")
	}
	if content == "" {
		return File{Newline: newline}
	}
	hadFinal := strings.HasSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	if hadFinal {
		lines = lines[:len(lines)-1]
	}
	return File{Lines: lines, Newline: newline, HadFinalNewline: hadFinal}
}

// Join reassembles lines into file content using f's newline flavor and final-newline state.
func (f File) Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	final := f.HadFinalNewline
	if len(f.Lines) == 0 {
		// Content grown from an empty file gets a final newline.
		final = true
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString(f.Newline)
		}
		b.WriteString(line)
	}
	if final {
		b.WriteString(f.Newline)
	}
	return b.String()
}

// Write replaces path's content atomically: the bytes land in a temp file in the same directory, which is then renamed over path. The original file's
// permissions are kept when it exists; new files get 0644.
func Write(path string, content string) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Backup copies path's current content to a sibling path with a .orig suffix and returns the backup path. The backup is a plain copy; it is never removed or
// rolled back by this package.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	backupPath := path + ".orig"
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	return backupPath, nil
}
