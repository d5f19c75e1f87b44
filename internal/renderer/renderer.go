package renderer

import (
	"github.com/islml/kaze/internal/ansi"
	"github.com/islml/kaze/internal/renderer/statusline"
	"github.com/islml/kaze/internal/renderer/viewport"
)

// Welcome is the banner drawn on an empty document.
const Welcome = "Kaze (風) - Text editor"

// DocumentReader provides read access to document content.
// This interface abstracts the document model for rendering.
type DocumentReader interface {
	// Name returns the display name, "" when unnamed.
	Name() string

	// LineCount returns the number of lines.
	LineCount() int

	// RenderSlice returns the rendered bytes of row in [from, from+width).
	RenderSlice(row, from, width int) []byte
}

// Renderer composes frames from a document, the viewport and the bars.
type Renderer struct {
	viewport *viewport.Viewport
	status   *statusline.StatusBar
	message  *statusline.MessageBar
}

// New creates a renderer drawing through the given components.
func New(vp *viewport.Viewport, status *statusline.StatusBar, message *statusline.MessageBar) *Renderer {
	return &Renderer{
		viewport: vp,
		status:   status,
		message:  message,
	}
}

// Compose builds the frame for the cursor at (row, renderCol). The
// viewport must already be scrolled so the cursor is in view. Message
// visibility is sampled once and recorded on the frame.
func (r *Renderer) Compose(doc DocumentReader, row, renderCol int) *Frame {
	f := NewFrame()
	f.WriteString(ansi.HideCursor)
	f.WriteString(ansi.CursorHome)

	r.drawRows(f, doc)

	cols := r.viewport.Cols()
	r.status.SetFilename(doc.Name())
	r.status.SetTotalLines(doc.LineCount())
	r.status.SetRow(row)
	f.Append(func(b []byte) []byte { return r.status.Append(b, cols) })
	f.messageShown = r.message.Visible()
	f.Append(func(b []byte) []byte { return r.message.Append(b, cols, f.messageShown) })

	y, x := r.viewport.ScreenPosition(row, renderCol)
	f.Append(func(b []byte) []byte { return ansi.AppendMoveCursor(b, y+1, x+1) })
	f.WriteString(ansi.ShowCursor)
	return f
}

// drawRows draws every text row of the viewport.
func (r *Renderer) drawRows(f *Frame, doc DocumentReader) {
	rows, cols := r.viewport.Rows(), r.viewport.Cols()
	rowOffset, colOffset := r.viewport.RowOffset(), r.viewport.ColOffset()
	n := doc.LineCount()

	for y := 0; y < rows; y++ {
		fileRow := y + rowOffset
		switch {
		case fileRow < n:
			f.Write(doc.RenderSlice(fileRow, colOffset, cols))
		case n == 0 && y == rows/3:
			drawWelcome(f, cols)
		default:
			f.WriteString("~")
		}

		f.WriteString(ansi.ClearLineRight)
		f.WriteString("\r\n")
	}
}

// drawWelcome draws the banner centered by display width, with the
// first padding cell as the row's tilde.
func drawWelcome(f *Frame, cols int) {
	text := statusline.Clip(Welcome, cols)
	padding := (cols - statusline.Width(text)) / 2
	if padding > 0 {
		f.WriteString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		f.WriteString(" ")
	}

	f.WriteString(ansi.Green)
	f.WriteString(text)
	f.WriteString(ansi.Reset)
}
