package unidiff

import "strings"

// Stats counts added and removed lines.
type Stats struct {
	Added   int
	Removed int
}

// CountHunks tallies added/removed lines across hunks.
func CountHunks(hunks []Hunk) Stats {
	var s Stats
	for _, h := range hunks {
		for _, ln := range h.Lines {
			switch ln.Kind {
			case LineAdded:
				s.Added++
			case LineRemoved:
				s.Removed++
			}
		}
	}
	return s
}

// CountText tallies added/removed lines in raw unified-diff text, skipping ---/+++/@@ header lines. Lines that fit no category count as zero, so malformed
// input simply yields zero stats.
func CountText(text string) Stats {
	var s Stats
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
		case strings.HasPrefix(line, "+"):
			s.Added++
		case strings.HasPrefix(line, "-"):
			s.Removed++
		}
	}
	return s
}
