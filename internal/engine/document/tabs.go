package document

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 4

// RenderOf expands every tab in content to spaces up to the next
// multiple of tabStop. Other bytes are copied unchanged.
func RenderOf(content []byte, tabStop int) []byte {
	tabStop = normalizeTabStop(tabStop)

	tabs := 0
	for _, c := range content {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(content)+tabs*(tabStop-1))
	for _, c := range content {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%tabStop != 0 {
			render = append(render, ' ')
		}
	}
	return render
}

// ColumnToRenderColumn returns the rendered position of content column
// col. It replays the tab expansion of RenderOf up to col only.
// Columns past the end are treated as the end of the line.
func ColumnToRenderColumn(content []byte, col, tabStop int) int {
	tabStop = normalizeTabStop(tabStop)
	if col > len(content) {
		col = len(content)
	}

	rx := 0
	for i := 0; i < col; i++ {
		if content[i] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

func normalizeTabStop(tabStop int) int {
	if tabStop < 1 {
		return DefaultTabStop
	}
	return tabStop
}
