// Package cursor provides the cursor position and cursor movement over a
// line-oriented document.
//
// A Cursor is a (Row, Col) pair in document coordinates: Row indexes
// lines and Col indexes bytes of the raw line content. Row may equal the
// document's line count, the virtual row just past the last line.
//
// Movement:
//
//   - Up and Down stay within [0, LineCount]
//   - Left at column 0 wraps to the end of the previous line
//   - Right at the end of a line wraps to the start of the next line
//   - After any vertical move the column is clamped to the new line
//
// Basic usage:
//
//	c := cursor.Cursor{}
//	c = c.Move(doc, cursor.Down)
//	c = c.End(doc)
//
// Cursor is an immutable value type and safe for concurrent use.
package cursor
