// Package document holds the read-only line model of an open file.
//
// A Document is the file's lines in order. Each Line keeps the bytes
// read from disk and a rendered form where tabs are expanded with spaces
// to the next tab stop. Cursor columns index the stored content; screen
// columns index the rendered form. ColumnToRenderColumn converts between
// the two.
//
// Basic usage:
//
//	doc, err := document.Open("main.go", document.WithTabStop(4))
//	if err != nil {
//	    return err
//	}
//	line := doc.Line(0)
//	rx := line.RenderColumn(3)
package document
