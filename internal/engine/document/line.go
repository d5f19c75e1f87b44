package document

// Line is one line of a document.
type Line struct {
	content []byte
	render  []byte
	tabStop int
}

// NewLine creates a line from content, which must not contain the line
// terminator. The line takes ownership of content.
func NewLine(content []byte, tabStop int) *Line {
	l := &Line{content: content, tabStop: normalizeTabStop(tabStop)}
	l.Update()
	return l
}

// Content returns the stored bytes. The slice must not be modified.
func (l *Line) Content() []byte { return l.content }

// Render returns the tab-expanded bytes. The slice must not be modified.
func (l *Line) Render() []byte { return l.render }

// Len returns the content length in bytes.
func (l *Line) Len() int { return len(l.content) }

// Update regenerates the rendered form from the content.
func (l *Line) Update() {
	l.render = RenderOf(l.content, l.tabStop)
}

// RenderColumn maps a content column to its rendered column.
func (l *Line) RenderColumn(col int) int {
	return ColumnToRenderColumn(l.content, col, l.tabStop)
}

// Slice returns the rendered bytes visible in [from, from+width).
func (l *Line) Slice(from, width int) []byte {
	r := l.Render()
	if from >= len(r) || width <= 0 {
		return nil
	}
	from = max(from, 0)
	return r[from:min(from+width, len(r))]
}
