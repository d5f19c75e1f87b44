package statusline

import (
	"fmt"
	"time"

	"github.com/islml/kaze/internal/ansi"
)

// DefaultMessageTimeout is how long a message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// MessageBar holds a transient message that hides itself once it is
// older than the timeout.
type MessageBar struct {
	msg     string
	setAt   time.Time
	timeout time.Duration
	now     func() time.Time
}

// MessageOption configures a MessageBar.
type MessageOption func(*MessageBar)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) MessageOption {
	return func(m *MessageBar) {
		m.now = now
	}
}

// NewMessageBar creates an empty message bar. A negative timeout uses
// DefaultMessageTimeout.
func NewMessageBar(timeout time.Duration, opts ...MessageOption) *MessageBar {
	if timeout < 0 {
		timeout = DefaultMessageTimeout
	}
	m := &MessageBar{
		timeout: timeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Set formats a new message and stamps it with the current time.
func (m *MessageBar) Set(format string, args ...any) {
	m.msg = fmt.Sprintf(format, args...)
	m.setAt = m.now()
}

// Text returns the last message set, visible or not.
func (m *MessageBar) Text() string {
	return m.msg
}

// Visible reports whether the message is still shown.
func (m *MessageBar) Visible() bool {
	return m.msg != "" && m.now().Sub(m.setAt) < m.timeout
}

// Append appends the cleared message line to b, followed by the
// message clipped to width when show is set.
func (m *MessageBar) Append(b []byte, width int, show bool) []byte {
	b = append(b, ansi.ClearLineRight...)
	if show && m.msg != "" {
		b = append(b, Clip(m.msg, width)...)
	}
	return b
}
