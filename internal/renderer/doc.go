// Package renderer composes the screen for one refresh.
//
// Each refresh builds a fresh Frame holding the complete output:
//
//	ESC[?25l  hide cursor
//	ESC[H     home
//	rows      one per text row, each ending in ESC[K CR LF
//	status    inverted status bar
//	message   the message bar
//	ESC[y;xH  cursor placement
//	ESC[?25h  show cursor
//
// The frame is flushed to the terminal with a single Write and then
// discarded, so the terminal never shows a half-drawn screen.
//
// Usage:
//
//	r := renderer.New(vp, status, message)
//	frame := r.Compose(doc, row, renderCol)
//	_, err := frame.WriteTo(term)
package renderer
