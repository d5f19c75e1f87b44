// Package ansi holds the VT100/ANSI control sequences kaze writes to the
// terminal. The byte values are part of the terminal contract and must
// not change.
package ansi

import "strconv"

// ESC is the escape byte that starts every control sequence.
const ESC = '\x1b'

// Screen and cursor control.
const (
	ClearScreen       = "\x1b[2J"
	ClearLineRight    = "\x1b[K"
	CursorHome        = "\x1b[H"
	HideCursor        = "\x1b[?25l"
	ShowCursor        = "\x1b[?25h"
	CursorBottomRight = "\x1b[999C\x1b[999B"
	QueryCursor       = "\x1b[6n"
)

// SGR attributes.
const (
	Invert = "\x1b[7m"
	Green  = "\x1b[32m"
	Reset  = "\x1b[0m"
)

// MoveCursor returns the sequence placing the cursor at the 1-based
// row and column.
func MoveCursor(row, col int) string {
	return string(AppendMoveCursor(nil, row, col))
}

// AppendMoveCursor appends the cursor placement sequence to b.
func AppendMoveCursor(b []byte, row, col int) []byte {
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}
