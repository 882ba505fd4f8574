package unidiff

import (
	"fmt"
	"strings"
)

// Format serializes p to unified-diff text. A patch with zero hunks formats to the empty string. Labels are emitted with the conventional a/ and b/ prefixes.
func Format(p Patch) string {
	if len(p.Hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", p.OldLabel)
	fmt.Fprintf(&b, "+++ b/%s\n", p.NewLabel)
	for _, h := range p.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
		for _, ln := range h.Lines {
			b.WriteByte(linePrefix(ln.Kind))
			b.WriteString(ln.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func linePrefix(kind LineKind) byte {
	switch kind {
	case LineAdded:
		return '+'
	case LineRemoved:
		return '-'
	default:
		return ' '
	}
}
