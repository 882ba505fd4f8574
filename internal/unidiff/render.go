package unidiff

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render returns a terminal-oriented rendering of p. With color, lines get ANSI colors (cyan headers, magenta hunk markers, green additions, red deletions).
// With width > 0, each rendered line is truncated to that many display columns.
//
// The output is for humans; Format is the machine-readable form.
func Render(p Patch, color bool, width int) string {
	const (
		reset    = "\x1b[0m"
		red      = "\x1b[31m"
		green    = "\x1b[32m"
		magenta  = "\x1b[35m"
		cyanBold = "\x1b[1;36m"
	)

	colorize := func(s, code string) string {
		if !color {
			return s
		}
		return code + s + reset
	}
	fit := func(s string) string {
		if width > 0 && runewidth.StringWidth(s) > width {
			return runewidth.Truncate(s, width, "…")
		}
		return s
	}

	if len(p.Hunks) == 0 {
		return ""
	}

	var out []string
	out = append(out, colorize(fit("--- a/"+p.OldLabel), cyanBold))
	out = append(out, colorize(fit("+++ b/"+p.NewLabel), cyanBold))
	for _, h := range p.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
		out = append(out, colorize(fit(header), magenta))
		for _, ln := range h.Lines {
			line := fit(string(linePrefix(ln.Kind)) + ln.Text)
			switch ln.Kind {
			case LineAdded:
				out = append(out, colorize(line, green))
			case LineRemoved:
				out = append(out, colorize(line, red))
			default:
				out = append(out, line)
			}
		}
	}
	return strings.Join(out, "\n")
}
