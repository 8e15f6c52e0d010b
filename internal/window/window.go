// Package window provides a borrowed, bounds-checked read cursor over a byte slice.
package window

import (
	"fmt"
	"math"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
)

// Window is a read cursor into a caller-owned buffer.
//
// The buffer is never copied or retained beyond the lifetime of the Window.
// Reads consume bytes from the front, so the remaining length only shrinks.
// A Window is a small value; copy it to take a cheap checkpoint.
type Window struct {
	buf []byte
	off int
	n   int
}

// New returns a window over the whole of buf.
func New(buf []byte) Window {
	return Window{buf: buf, off: 0, n: len(buf)}
}

// Len returns the number of bytes left in the window.
func (w Window) Len() int {
	return w.n
}

// Bytes returns the unread bytes. The slice aliases the underlying buffer.
func (w Window) Bytes() []byte {
	return w.buf[w.off : w.off+w.n]
}

// At returns the byte at position i relative to the window start without consuming it.
func (w Window) At(i int) (byte, error) {
	if i < 0 || i >= w.n {
		return 0, fmt.Errorf("%w: index %d outside window of %d bytes", errs.ErrInsufficientData, i, w.n)
	}

	return w.buf[w.off+i], nil
}

// Skip consumes n bytes.
func (w *Window) Skip(n int) error {
	_, err := w.Next(n)
	return err
}

// Next consumes n bytes and returns them. The slice aliases the underlying buffer.
func (w *Window) Next(n int) ([]byte, error) {
	if n < 0 || n > w.n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrInsufficientData, n, w.off, w.n)
	}

	b := w.buf[w.off : w.off+n]
	w.off += n
	w.n -= n

	return b, nil
}

// ReadByte consumes one byte.
func (w *Window) ReadByte() (byte, error) {
	b, err := w.Next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadUint32 consumes a 4-byte unsigned integer in the given byte order.
func (w *Window) ReadUint32(engine endian.EndianEngine) (uint32, error) {
	b, err := w.Next(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}

// ReadInt32 consumes a 4-byte signed integer in the given byte order.
func (w *Window) ReadInt32(engine endian.EndianEngine) (int32, error) {
	v, err := w.ReadUint32(engine)
	return int32(v), err //nolint: gosec
}

// ReadFloat64 consumes an 8-byte IEEE-754 value in the given byte order.
func (w *Window) ReadFloat64(engine endian.EndianEngine) (float64, error) {
	b, err := w.Next(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(engine.Uint64(b)), nil
}
