// Package statusline provides the status bar and the expiring message
// bar drawn below the text area.
package statusline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/islml/kaze/internal/ansi"
)

// maxNameLen is the number of grapheme clusters of the file name shown.
const maxNameLen = 20

// NoName is shown in place of the file name of an unnamed document.
const NoName = "[No Name]"

// StatusBar renders the inverted line showing the file name, line count
// and cursor row.
type StatusBar struct {
	filename   string
	totalLines int
	line       int // 1-indexed for display
}

// New creates a new status bar.
func New() *StatusBar {
	return &StatusBar{line: 1}
}

// SetFilename updates the displayed filename. Empty means unnamed.
func (s *StatusBar) SetFilename(filename string) {
	s.filename = filename
}

// SetTotalLines updates the total line count.
func (s *StatusBar) SetTotalLines(total int) {
	s.totalLines = total
}

// SetRow updates the cursor row (0-indexed).
func (s *StatusBar) SetRow(row int) {
	s.line = row + 1
}

// Left returns the left-hand text, e.g. "notes.txt - 12 lines".
func (s *StatusBar) Left() string {
	name := s.filename
	if name == "" {
		name = NoName
	}
	return fmt.Sprintf("%s - %d lines", Head(name, maxNameLen), s.totalLines)
}

// Right returns the right-hand text, e.g. "3/12".
func (s *StatusBar) Right() string {
	return strconv.Itoa(s.line) + "/" + strconv.Itoa(s.totalLines)
}

// Content returns the bar text for the given width: the left part
// clipped to width, padded with spaces, and the right part flush right
// when it fits in the remaining cells.
func (s *StatusBar) Content(width int) string {
	left := Clip(s.Left(), width)
	right := s.Right()

	var sb strings.Builder
	sb.WriteString(left)

	n := Width(left)
	rlen := len(right)
	for n < width {
		if width-n == rlen {
			sb.WriteString(right)
			break
		}
		sb.WriteByte(' ')
		n++
	}
	return sb.String()
}

// Append appends the inverted bar and the line break to b.
func (s *StatusBar) Append(b []byte, width int) []byte {
	b = append(b, ansi.Invert...)
	b = append(b, s.Content(width)...)
	b = append(b, ansi.Reset...)
	return append(b, "\r\n"...)
}
