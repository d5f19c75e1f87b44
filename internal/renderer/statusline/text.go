package statusline

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Clip returns the longest prefix of s that fits in width cells without
// splitting a grapheme cluster.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}

	g := uniseg.NewGraphemes(s)
	used := 0
	end := 0
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		used += w
		_, end = g.Positions()
	}
	return s[:end]
}

// Head returns the first n grapheme clusters of s.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}

	g := uniseg.NewGraphemes(s)
	var sb strings.Builder
	for i := 0; i < n && g.Next(); i++ {
		sb.WriteString(g.Str())
	}
	return sb.String()
}
