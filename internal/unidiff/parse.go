package unidiff

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidFormat indicates that patch text could not be parsed as a unified diff.
var ErrInvalidFormat = errors.New("invalid unified diff")

// IsInvalidFormat reports whether err (as returned from Parse) indicates malformed patch text rather than some other problem.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

func invalidFormatError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrInvalidFormat, err)
}

var hunkHeaderRE = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse parses unified-diff text into a Patch. It recognizes ---/+++ label lines (stripping an a/ or b/ prefix when present) and @@ hunk headers with optional
// counts, classifies hunk body lines by their first byte, ignores "\" no-newline markers, and skips any preamble before the first recognized header (git's
// "diff --git"/"index" lines). Hunks are returned sorted ascending by OldStart.
//
// Parse fails (wrapping ErrInvalidFormat) when no hunk header is found, a hunk body line has an unrecognized prefix, or an @@ line does not parse numerically.
// Header counts are not checked against the body; use Patch.Validate for that.
func Parse(text string) (Patch, error) {
	var p Patch
	var cur *Hunk
	sawHeader := false

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "--- "):
			if cur == nil {
				p.OldLabel = stripLabel(strings.TrimPrefix(line, "--- "), "a/")
				sawHeader = true
				continue
			}
		case strings.HasPrefix(line, "+++ "):
			if cur == nil {
				p.NewLabel = stripLabel(strings.TrimPrefix(line, "+++ "), "b/")
				sawHeader = true
				continue
			}
		}

		if strings.HasPrefix(line, "@@") {
			h, err := parseHunkHeader(line)
			if err != nil {
				return Patch{}, invalidFormatError(fmt.Errorf("line %d: %w", i+1, err))
			}
			p.Hunks = append(p.Hunks, h)
			cur = &p.Hunks[len(p.Hunks)-1]
			sawHeader = true
			continue
		}

		if cur == nil {
			// Preamble before the first header (git metadata and the like) is ignored.
			continue
		}

		if line == "" {
			if i == len(lines)-1 {
				continue // trailing newline artifact of the final Split
			}
			// Some tools emit truly empty lines for empty context.
			cur.Lines = append(cur.Lines, HunkLine{Kind: LineContext})
			continue
		}

		switch line[0] {
		case ' ':
			cur.Lines = append(cur.Lines, HunkLine{Kind: LineContext, Text: line[1:]})
		case '-':
			cur.Lines = append(cur.Lines, HunkLine{Kind: LineRemoved, Text: line[1:]})
		case '+':
			cur.Lines = append(cur.Lines, HunkLine{Kind: LineAdded, Text: line[1:]})
		case '\\':
			// "\ No newline at end of file"
		default:
			return Patch{}, invalidFormatError(fmt.Errorf("line %d: unrecognized line prefix %q", i+1, string(line[0])))
		}
	}

	if len(p.Hunks) == 0 {
		if !sawHeader {
			return Patch{}, invalidFormatError(errors.New("no hunk headers found"))
		}
		return Patch{}, invalidFormatError(errors.New("headers present but no hunks"))
	}

	sort.SliceStable(p.Hunks, func(a, b int) bool { return p.Hunks[a].OldStart < p.Hunks[b].OldStart })
	return p, nil
}

func parseHunkHeader(line string) (Hunk, error) {
	m := hunkHeaderRE.FindStringSubmatch(line)
	if m == nil {
		return Hunk{}, fmt.Errorf("malformed hunk header %q", line)
	}
	return Hunk{
		OldStart: mustAtoi(m[1]),
		OldLines: atoiDefault(m[2], 1),
		NewStart: mustAtoi(m[3]),
		NewLines: atoiDefault(m[4], 1),
	}, nil
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s) // the regexp guarantees digits
	return n
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return mustAtoi(s)
}

// stripLabel removes a diff-tool prefix (a/ or b/) and anything after the first tab (GNU diff appends timestamps there).
func stripLabel(s, prefix string) string {
	if i := strings.IndexByte(s, '\t'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimPrefix(s, prefix)
}

// Validate cross-checks each hunk's header counts against its body lines. Parse deliberately skips this; callers that must reject inconsistent patches run it
// as a post-check.
func (p Patch) Validate() error {
	for i, h := range p.Hunks {
		oldCount := 0
		newCount := 0
		for _, ln := range h.Lines {
			switch ln.Kind {
			case LineContext:
				oldCount++
				newCount++
			case LineRemoved:
				oldCount++
			case LineAdded:
				newCount++
			}
		}
		if oldCount != h.OldLines {
			return fmt.Errorf("hunk %d: header claims %d old lines, body has %d", i+1, h.OldLines, oldCount)
		}
		if newCount != h.NewLines {
			return fmt.Errorf("hunk %d: header claims %d new lines, body has %d", i+1, h.NewLines, newCount)
		}
	}
	return nil
}
