package cursor

import "fmt"

// Lines is the view of a document the cursor moves over.
type Lines interface {
	// LineCount returns the number of lines.
	LineCount() int

	// LineLen returns the byte length of line row, or 0 when row is out
	// of range.
	LineLen(row int) int
}

// Direction is a single-step cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Cursor is a position in document coordinates.
type Cursor struct {
	Row int
	Col int
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.Row, c.Col)
}

// Move returns the cursor moved one step in direction d, with the column
// clamped to the length of the resulting row.
func (c Cursor) Move(lines Lines, d Direction) Cursor {
	n := lines.LineCount()
	onLine := c.Row < n

	switch d {
	case Left:
		if c.Col > 0 {
			c.Col--
		} else if c.Row > 0 {
			c.Row--
			c.Col = lines.LineLen(c.Row)
		}
	case Right:
		if onLine {
			if c.Col < lines.LineLen(c.Row) {
				c.Col++
			} else {
				c.Row++
				c.Col = 0
			}
		}
	case Up:
		if c.Row > 0 {
			c.Row--
		}
	case Down:
		if c.Row < n {
			c.Row++
		}
	}

	return c.Clamp(lines)
}

// MoveN applies Move count times.
func (c Cursor) MoveN(lines Lines, d Direction, count int) Cursor {
	for range count {
		c = c.Move(lines, d)
	}
	return c
}

// Home returns the cursor at column 0 of its row.
func (c Cursor) Home() Cursor {
	c.Col = 0
	return c
}

// End returns the cursor at the end of its row. On the virtual row past
// the last line the cursor is unchanged.
func (c Cursor) End(lines Lines) Cursor {
	if c.Row < lines.LineCount() {
		c.Col = lines.LineLen(c.Row)
	}
	return c
}

// Clamp returns the cursor with Row in [0, LineCount] and Col in
// [0, LineLen(Row)]. The virtual row has length 0.
func (c Cursor) Clamp(lines Lines) Cursor {
	n := lines.LineCount()
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > n {
		c.Row = n
	}

	rowLen := 0
	if c.Row < n {
		rowLen = lines.LineLen(c.Row)
	}
	if c.Col > rowLen {
		c.Col = rowLen
	}
	if c.Col < 0 {
		c.Col = 0
	}
	return c
}
