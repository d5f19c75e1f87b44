package key

import "fmt"

// Key identifies a logical key.
// For literal bytes, use KeyChar and read the Byte field of Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyChar is any single input byte, including control bytes.
	KeyChar

	// KeyEscape is a lone escape or an unrecognised escape sequence.
	KeyEscape

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

var keyNames = [...]string{
	KeyNone:     "None",
	KeyChar:     "Char",
	KeyEscape:   "Escape",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyDelete:   "Delete",
}

// String returns the key name, e.g. "PageDown".
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsArrowKey reports whether k moves the cursor by one cell.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}
