package key

import "fmt"

// Event is a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Byte is the raw input byte for KeyChar events.
	Byte byte
}

// NewCharEvent creates an event for a literal input byte.
func NewCharEvent(b byte) Event {
	return Event{Key: KeyChar, Byte: b}
}

// NewSpecialEvent creates an event for a decoded special key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// Ctrl returns the byte a terminal sends for Ctrl+c: the letter with
// bits 5-7 cleared.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// IsCtrl reports whether the event is the Ctrl chord of letter c.
func (e Event) IsCtrl(c byte) bool {
	return e.Key == KeyChar && e.Byte == Ctrl(c)
}

// String returns a readable form, e.g. "a", "C-q", "0x7f", "PageDown".
func (e Event) String() string {
	if e.Key != KeyChar {
		return e.Key.String()
	}
	switch {
	case e.Byte >= 1 && e.Byte <= 26:
		return "C-" + string(rune('a'+e.Byte-1))
	case e.Byte < 0x20 || e.Byte >= 0x7f:
		return fmt.Sprintf("0x%02x", e.Byte)
	default:
		return string(rune(e.Byte))
	}
}
