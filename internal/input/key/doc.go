// Package key decodes raw terminal input into logical key events.
//
// The terminal delivers keys as bytes. Most keys are a single byte, but
// navigation keys arrive as escape sequences:
//
//   - ESC [ A..D          arrows
//   - ESC [ H, ESC [ F    Home, End
//   - ESC [ n ~           Home (1, 7), Delete (3), End (4, 8), PageUp (5), PageDown (6)
//   - ESC O H, ESC O F    Home, End (application keypad mode)
//
// Decoder resolves these with a small state machine that never looks
// more than three bytes past the escape. Anything it does not recognise
// decodes as a bare Escape. Control chords are not interpreted here:
// they arrive as KeyChar events and Ctrl helps callers match them.
package key
