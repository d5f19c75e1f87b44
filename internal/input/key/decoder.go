package key

import (
	"errors"
	"io"
	"iter"
	"syscall"

	"github.com/islml/kaze/internal/ansi"
	kerrors "github.com/islml/kaze/internal/errors"
)

// maxLookahead is the longest tail that can follow ESC ("[", digit, "~").
const maxLookahead = 3

// state is a decoder state between the escape byte and an emitted event.
type state uint8

const (
	stateEscape   state = iota // saw ESC
	stateCSI                   // saw ESC [
	stateCSIParam              // saw ESC [ digit
	stateSS3                   // saw ESC O
)

// Decoder turns a raw byte stream into key events.
//
// The reader is expected to behave like a raw terminal with a read
// timeout: a read that returns no bytes and no error means "no key yet".
type Decoder struct {
	r    io.Reader
	buf  [1]byte
	seq  [maxLookahead]byte
	n    int
	idle func() error
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// SetIdleFunc installs fn to run after every read that returned no
// byte while waiting for a key. A non-nil error from fn is returned by
// Next without an event.
func (d *Decoder) SetIdleFunc(fn func() error) {
	d.idle = fn
}

// Next blocks until one key event is decoded.
// Read failures other than would-block are returned as IOError.
func (d *Decoder) Next() (Event, error) {
	b, err := d.readFirst()
	if err != nil {
		return Event{}, err
	}
	if b != ansi.ESC {
		return NewCharEvent(b), nil
	}

	d.n = 0
	st := stateEscape
	for d.n < maxLookahead {
		c, ok, err := d.lookahead()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			// The sequence ended early: treat it as a bare escape.
			return NewSpecialEvent(KeyEscape), nil
		}

		next, k, done := step(st, c, d.seq[:d.n])
		if done {
			return NewSpecialEvent(k), nil
		}
		st = next
	}

	return NewSpecialEvent(KeyEscape), nil
}

// Events returns the lazy, unbounded sequence of decoded events.
// Iteration stops after the first error is yielded.
func (d *Decoder) Events() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := d.Next()
			if !yield(ev, err) || err != nil {
				return
			}
		}
	}
}

// step advances the state machine by one byte. seq holds the bytes read
// after ESC so far, including c. When done is true, k is the result.
func step(st state, c byte, seq []byte) (next state, k Key, done bool) {
	switch st {
	case stateEscape:
		switch c {
		case '[':
			return stateCSI, KeyNone, false
		case 'O':
			return stateSS3, KeyNone, false
		}

	case stateCSI:
		if c >= '0' && c <= '9' {
			return stateCSIParam, KeyNone, false
		}
		switch c {
		case 'A':
			return st, KeyUp, true
		case 'B':
			return st, KeyDown, true
		case 'C':
			return st, KeyRight, true
		case 'D':
			return st, KeyLeft, true
		case 'H':
			return st, KeyHome, true
		case 'F':
			return st, KeyEnd, true
		}

	case stateCSIParam:
		if c == '~' && len(seq) >= 2 {
			return st, tildeKey(seq[1]), true
		}

	case stateSS3:
		switch c {
		case 'H':
			return st, KeyHome, true
		case 'F':
			return st, KeyEnd, true
		}
	}

	return st, KeyEscape, true
}

// tildeKey maps the digit of an "ESC [ n ~" sequence.
func tildeKey(digit byte) Key {
	switch digit {
	case '1', '7':
		return KeyHome
	case '4', '8':
		return KeyEnd
	case '3':
		return KeyDelete
	case '5':
		return KeyPageUp
	case '6':
		return KeyPageDown
	default:
		return KeyEscape
	}
}

// readFirst blocks until a byte arrives, retrying empty and would-block
// reads.
func (d *Decoder) readFirst() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil && !wouldBlock(err) {
			return 0, ioError(err)
		}
		if d.idle != nil {
			if err := d.idle(); err != nil {
				return 0, err
			}
		}
	}
}

// lookahead reads one byte of an escape sequence. ok is false when no
// byte is available, which terminates the sequence.
func (d *Decoder) lookahead() (c byte, ok bool, err error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		d.seq[d.n] = d.buf[0]
		d.n++
		return d.buf[0], true, nil
	}
	if err != nil && !wouldBlock(err) && !errors.Is(err, io.EOF) {
		return 0, false, ioError(err)
	}
	return 0, false, nil
}

func wouldBlock(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR)
}

func ioError(err error) error {
	if kerrors.IsIO(err) {
		return err
	}
	return kerrors.NewIOError("read", err)
}
