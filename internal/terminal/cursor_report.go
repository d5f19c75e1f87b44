package terminal

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/islml/kaze/internal/ansi"
)

// ErrBadCursorReport is returned when the terminal's reply to a cursor
// position query cannot be parsed.
var ErrBadCursorReport = errors.New("malformed cursor position report")

// maxReportLen bounds how many reply bytes are read before giving up.
const maxReportLen = 31

// QueryCursorPosition pushes the cursor to the bottom-right corner and
// asks the terminal where it ended up. The reply is the terminal size.
func QueryCursorPosition(rw io.ReadWriter) (rows, cols int, err error) {
	if _, err := io.WriteString(rw, ansi.CursorBottomRight); err != nil {
		return 0, 0, err
	}
	if _, err := io.WriteString(rw, ansi.QueryCursor); err != nil {
		return 0, 0, err
	}

	reply := make([]byte, 0, maxReportLen)
	var b [1]byte
	for len(reply) < maxReportLen {
		n, err := rw.Read(b[:])
		if n != 1 || err != nil {
			break
		}
		if b[0] == 'R' {
			break
		}
		reply = append(reply, b[0])
	}

	return ParseCursorReport(reply)
}

// ParseCursorReport parses a cursor position report of the form
// "ESC [ rows ; cols", with or without the trailing 'R'.
func ParseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 2 || reply[0] != ansi.ESC || reply[1] != '[' {
		return 0, 0, ErrBadCursorReport
	}
	body := bytes.TrimSuffix(reply[2:], []byte{'R'})

	r, c, ok := bytes.Cut(body, []byte{';'})
	if !ok {
		return 0, 0, ErrBadCursorReport
	}

	rows, err = strconv.Atoi(string(r))
	if err != nil || rows <= 0 {
		return 0, 0, ErrBadCursorReport
	}
	cols, err = strconv.Atoi(string(c))
	if err != nil || cols <= 0 {
		return 0, 0, ErrBadCursorReport
	}

	return rows, cols, nil
}
