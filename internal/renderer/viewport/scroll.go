package viewport

// Scroll adjusts the offsets by the minimum amount that brings the
// position into view. Rows are adjusted before columns. Scrolling to a
// position already in view changes nothing.
func (v *Viewport) Scroll(row, renderCol int) {
	if row < v.rowOffset {
		v.rowOffset = row
	}
	if row >= v.rowOffset+v.rows {
		v.rowOffset = row - v.rows + 1
	}

	if renderCol < v.colOffset {
		v.colOffset = renderCol
	}
	if renderCol >= v.colOffset+v.cols {
		v.colOffset = renderCol - v.cols + 1
	}
}
