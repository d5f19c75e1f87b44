// Package viewport provides the scroll window over a document.
package viewport

import "fmt"

// Viewport is the visible window of the document: RowOffset lines and
// ColOffset render columns are scrolled off, and Rows by Cols cells are
// shown.
type Viewport struct {
	rowOffset int
	colOffset int

	// Size in screen cells
	rows int
	cols int
}

// New creates a viewport with the given text area size.
// Rows and cols are clamped to a minimum of 1.
func New(rows, cols int) *Viewport {
	v := &Viewport{}
	v.Resize(rows, cols)
	return v
}

// ForTerminal creates a viewport for a terminal of the given size,
// reserving the bottom two rows for the status and message bars.
func ForTerminal(termRows, termCols int) *Viewport {
	return New(termRows-2, termCols)
}

// Resize updates the viewport size.
// Rows and cols are clamped to a minimum of 1.
func (v *Viewport) Resize(rows, cols int) {
	v.rows = max(rows, 1)
	v.cols = max(cols, 1)
}

// Rows returns the number of text rows.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the number of text columns.
func (v *Viewport) Cols() int { return v.cols }

// RowOffset returns the first visible document row.
func (v *Viewport) RowOffset() int { return v.rowOffset }

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int { return v.colOffset }

// ScreenPosition returns the 0-based screen cell of a document position.
func (v *Viewport) ScreenPosition(row, renderCol int) (y, x int) {
	return row - v.rowOffset, renderCol - v.colOffset
}

// String returns a string representation of the viewport.
func (v *Viewport) String() string {
	return fmt.Sprintf("Viewport(%d+%d, %d+%d)", v.rowOffset, v.rows, v.colOffset, v.cols)
}
