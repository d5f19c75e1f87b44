package document

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	kerrors "github.com/islml/kaze/internal/errors"
)

// Document is the ordered, read-only set of lines of an opened file.
type Document struct {
	path    string
	lines   []*Line
	tabStop int
}

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithTabStop sets the tab width used to render lines.
// Values below 1 keep DefaultTabStop.
func WithTabStop(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.tabStop = n
		}
	}
}

// New creates an empty, unnamed document.
func New(opts ...Option) *Document {
	d := &Document{tabStop: DefaultTabStop}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open reads the file at path into a document, one Line per physical
// line. Failures are reported as FileError.
func Open(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, kerrors.NewFileError("open", path, err)
	}
	defer f.Close()

	return Read(path, f, opts...)
}

// Read builds a document named name from r.
// Trailing '\n' and '\r' bytes are stripped from each line; nothing
// else is trimmed.
func Read(name string, r io.Reader, opts ...Option) (*Document, error) {
	d := New(opts...)
	d.path = name

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.appendLine(bytes.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, kerrors.NewFileError("read", name, err)
		}
	}

	return d, nil
}

// appendLine copies content into a new Line at the end of the document.
func (d *Document) appendLine(content []byte) {
	owned := make([]byte, len(content))
	copy(owned, content)
	d.lines = append(d.lines, NewLine(owned, d.tabStop))
}

// Name returns the display name, or "" for an unnamed document.
func (d *Document) Name() string { return d.path }

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns line i, or nil when i is out of range.
func (d *Document) Line(i int) *Line {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return d.lines[i]
}

// LineLen returns the content length of line i, or 0 when i is out of
// range.
func (d *Document) LineLen(i int) int {
	if l := d.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// RenderColumn maps a cursor position to its rendered column. Rows past
// the last line render at column 0.
func (d *Document) RenderColumn(row, col int) int {
	if l := d.Line(row); l != nil {
		return l.RenderColumn(col)
	}
	return 0
}

// RenderSlice returns the rendered bytes of row visible in
// [from, from+width), or nil when row is out of range.
func (d *Document) RenderSlice(row, from, width int) []byte {
	if l := d.Line(row); l != nil {
		return l.Slice(from, width)
	}
	return nil
}
