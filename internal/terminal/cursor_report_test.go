package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/islml/kaze/internal/ansi"
)

// fakeTTY answers reads from a canned reply and records writes.
type fakeTTY struct {
	reply   *bytes.Reader
	written bytes.Buffer
}

func newFakeTTY(reply string) *fakeTTY {
	return &fakeTTY{reply: bytes.NewReader([]byte(reply))}
}

func (f *fakeTTY) Read(p []byte) (int, error)  { return f.reply.Read(p) }
func (f *fakeTTY) Write(p []byte) (int, error) { return f.written.Write(p) }

func TestParseCursorReport(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		rows     int
		cols     int
		wantFail bool
	}{
		{name: "standard", reply: "\x1b[24;80", rows: 24, cols: 80},
		{name: "with terminator", reply: "\x1b[50;132R", rows: 50, cols: 132},
		{name: "single cell", reply: "\x1b[1;1", rows: 1, cols: 1},
		{name: "missing escape", reply: "[24;80", wantFail: true},
		{name: "missing bracket", reply: "\x1b24;80", wantFail: true},
		{name: "missing separator", reply: "\x1b[2480", wantFail: true},
		{name: "non numeric", reply: "\x1b[ab;cd", wantFail: true},
		{name: "zero rows", reply: "\x1b[0;80", wantFail: true},
		{name: "empty", reply: "", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols, err := ParseCursorReport([]byte(tt.reply))
			if tt.wantFail {
				if !errors.Is(err, ErrBadCursorReport) {
					t.Fatalf("expected ErrBadCursorReport, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("got %dx%d, want %dx%d", rows, cols, tt.rows, tt.cols)
			}
		})
	}
}

func TestQueryCursorPosition(t *testing.T) {
	tty := newFakeTTY("\x1b[40;120Rtrailing")

	rows, cols, err := QueryCursorPosition(tty)
	if err != nil {
		t.Fatalf("QueryCursorPosition error = %v", err)
	}
	if rows != 40 || cols != 120 {
		t.Errorf("got %dx%d, want 40x120", rows, cols)
	}

	want := ansi.CursorBottomRight + ansi.QueryCursor
	if got := tty.written.String(); got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}

	// Bytes after 'R' belong to the next reader.
	if tty.reply.Len() != len("trailing") {
		t.Errorf("expected %d unread bytes, got %d", len("trailing"), tty.reply.Len())
	}
}

func TestQueryCursorPositionNoReply(t *testing.T) {
	tty := newFakeTTY("")

	if _, _, err := QueryCursorPosition(tty); !errors.Is(err, ErrBadCursorReport) {
		t.Errorf("expected ErrBadCursorReport, got %v", err)
	}
}

func TestQueryCursorPositionBoundedRead(t *testing.T) {
	// A reply that never terminates must not be consumed past the bound.
	tty := newFakeTTY("\x1b[" + string(bytes.Repeat([]byte{'9'}, 64)))

	if _, _, err := QueryCursorPosition(tty); err == nil {
		t.Fatal("expected error for unterminated reply")
	}
	if consumed := 66 - tty.reply.Len(); consumed != maxReportLen {
		t.Errorf("consumed %d bytes, want %d", consumed, maxReportLen)
	}
}
