// Package bytebuf holds the raw byte sequence displayed by a hex view.
//
// The buffer is exclusively owned by its widget: all interactive edits go
// through offset-bounded overwrites, and the length only changes when the
// host explicitly resizes or replaces the data.
package bytebuf

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an offset lies beyond the buffer length.
// With a correctly clamped cursor this is unreachable; hitting it means an
// invariant was violated upstream.
var ErrOutOfRange = errors.New("offset out of range")

type Buffer struct {
	data []byte
}

// New wraps the given data. The buffer takes ownership of the slice.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Data returns the underlying bytes. Callers must not resize it.
func (b *Buffer) Data() []byte {
	return b.data
}

// Read returns the byte at offset, or ErrOutOfRange.
func (b *Buffer) Read(offset int) (byte, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, fmt.Errorf("read at %d: %w", offset, ErrOutOfRange)
	}
	return b.data[offset], nil
}

// Write overwrites the byte at offset in place, or returns ErrOutOfRange.
// It never resizes the buffer.
func (b *Buffer) Write(offset int, value byte) error {
	if offset < 0 || offset >= len(b.data) {
		return fmt.Errorf("write at %d: %w", offset, ErrOutOfRange)
	}
	b.data[offset] = value
	return nil
}

// Bytes returns a copy of up to count bytes starting at offset, truncated
// at the buffer end. A nil slice is returned when offset is out of range.
func (b *Buffer) Bytes(offset, count int) []byte {
	if offset < 0 || offset >= len(b.data) || count <= 0 {
		return nil
	}
	end := offset + count
	if end > len(b.data) {
		end = len(b.data)
	}
	result := make([]byte, end-offset)
	copy(result, b.data[offset:end])
	return result
}

// SetData replaces the entire contents.
func (b *Buffer) SetData(data []byte) {
	b.data = data
}

// SetLen resizes the buffer to length n. Growing appends zero bytes,
// shrinking truncates and discards the tail.
func (b *Buffer) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < len(b.data):
		b.data = b.data[:n]
	case n > len(b.data):
		grown := make([]byte, n)
		copy(grown, b.data)
		b.data = grown
	}
}
