package renderer

import (
	"bytes"
	"io"
)

// Frame is the append-only output of one refresh.
type Frame struct {
	buf bytes.Buffer

	messageShown bool
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Write appends p to the frame.
func (f *Frame) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// WriteString appends s to the frame.
func (f *Frame) WriteString(s string) (int, error) {
	return f.buf.WriteString(s)
}

// Append lets fn append to the frame's spare capacity.
func (f *Frame) Append(fn func([]byte) []byte) {
	f.buf.Write(fn(f.buf.AvailableBuffer()))
}

// MessageShown reports whether the frame drew the message bar text.
func (f *Frame) MessageShown() bool {
	return f.messageShown
}

// Bytes returns the frame content.
func (f *Frame) Bytes() []byte {
	return f.buf.Bytes()
}

// Len returns the frame length in bytes.
func (f *Frame) Len() int {
	return f.buf.Len()
}

// WriteTo flushes the frame to w with exactly one Write call.
// A short write is reported as io.ErrShortWrite.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	p := f.buf.Bytes()
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
