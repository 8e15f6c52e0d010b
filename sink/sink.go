// Package sink provides the write targets of the blob encoder and the
// back-patch engine that fills placeholder fields once their values are known.
//
// A Sink is an io.Writer that knows its current write position. Sinks that
// also implement Seeker support random-access repositioning, which is what
// back-patching requires:
//
//	ph, _ := sink.Reserve(s, 4)          // zero placeholder, remember where
//	... write the payload, count elements ...
//	err := sink.PatchUint32(s, ph, engine, count)
//
// Patching saves the current position, seeks back to the placeholder,
// overwrites it and restores the position. It never re-reads payload bytes.
//
// Sinks are not safe for concurrent use.
package sink

import (
	"fmt"
	"io"

	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/internal/pool"
)

// Sink is a write target that tracks its current write position.
type Sink interface {
	io.Writer
	// Position returns the offset at which the next Write lands.
	Position() int64
}

// Seeker is a Sink that supports random-access positioning.
type Seeker interface {
	Sink
	// SeekTo moves the write position to the absolute offset pos.
	// pos must not exceed the number of bytes written so far.
	SeekTo(pos int64) error
}

// CanSeek reports whether s supports back-patching.
func CanSeek(s Sink) bool {
	_, ok := s.(Seeker)
	return ok
}

// Buffer is an in-memory, seekable sink backed by a pooled byte buffer.
//
// Writes at a position before the end overwrite existing bytes; writes that
// run past the end extend the buffer.
type Buffer struct {
	buf *pool.ByteBuffer
	pos int
	put func(*pool.ByteBuffer)
}

var _ Seeker = (*Buffer)(nil)

// NewBuffer returns a Buffer drawn from the blob buffer pool.
// Call Release when the contents are no longer needed.
func NewBuffer() *Buffer {
	return &Buffer{buf: pool.GetBlobBuffer(), put: pool.PutBlobBuffer}
}

// NewSetBuffer returns a Buffer drawn from the larger geometry set pool.
func NewSetBuffer() *Buffer {
	return &Buffer{buf: pool.GetSetBuffer(), put: pool.PutSetBuffer}
}

func (b *Buffer) Write(p []byte) (int, error) {
	if b.buf == nil {
		return 0, fmt.Errorf("%w: write to released buffer", errs.ErrInvalidOperation)
	}

	b.buf.WriteAt(p, b.pos)
	b.pos += len(p)

	return len(p), nil
}

func (b *Buffer) Position() int64 {
	return int64(b.pos)
}

func (b *Buffer) SeekTo(pos int64) error {
	if b.buf == nil {
		return fmt.Errorf("%w: seek on released buffer", errs.ErrInvalidOperation)
	}
	if pos < 0 || pos > int64(b.buf.Len()) {
		return fmt.Errorf("%w: seek to %d outside buffer of %d bytes", errs.ErrInvalidOperation, pos, b.buf.Len())
	}

	b.pos = int(pos)

	return nil
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	if b.buf == nil {
		return 0
	}

	return b.buf.Len()
}

// Bytes returns the buffer contents. The slice is only valid until Release.
func (b *Buffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}

	return b.buf.Bytes()
}

// Truncate discards every byte from offset n on and moves the write
// position to n if it was beyond it.
func (b *Buffer) Truncate(n int) error {
	if b.buf == nil {
		return fmt.Errorf("%w: truncate of released buffer", errs.ErrInvalidOperation)
	}
	if n < 0 || n > b.buf.Len() {
		return fmt.Errorf("%w: truncate to %d outside buffer of %d bytes", errs.ErrInvalidOperation, n, b.buf.Len())
	}

	b.buf.SetLength(n)
	b.pos = min(b.pos, n)

	return nil
}

// Reset discards the contents and rewinds to position zero.
func (b *Buffer) Reset() {
	if b.buf != nil {
		b.buf.Reset()
	}
	b.pos = 0
}

// Release returns the backing buffer to its pool. The Buffer must not be used afterwards.
func (b *Buffer) Release() {
	if b.buf != nil && b.put != nil {
		b.put(b.buf)
	}
	b.buf = nil
	b.pos = 0
}

// Stream is a forward-only sink over an io.Writer. It cannot be patched.
type Stream struct {
	w   io.Writer
	pos int64
}

var _ Sink = (*Stream)(nil)

// NewStream wraps w. Position starts at zero.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.pos += int64(n)

	return n, err
}

func (s *Stream) Position() int64 {
	return s.pos
}

// File is a seekable sink over an io.WriteSeeker such as *os.File.
type File struct {
	ws    io.WriteSeeker
	start int64 // offset at wrap time; earlier bytes belong to the caller
	pos   int64
	end   int64
}

var _ Seeker = (*File)(nil)

// NewFile wraps ws, starting at its current offset.
func NewFile(ws io.WriteSeeker) (*File, error) {
	pos, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("locate write position: %w", err)
	}

	return &File{ws: ws, start: pos, pos: pos, end: pos}, nil
}

func (f *File) Write(p []byte) (int, error) {
	n, err := f.ws.Write(p)
	f.pos += int64(n)
	if f.pos > f.end {
		f.end = f.pos
	}

	return n, err
}

func (f *File) Position() int64 {
	return f.pos
}

func (f *File) SeekTo(pos int64) error {
	if pos < f.start || pos > f.end {
		return fmt.Errorf("%w: seek to %d outside written range [%d, %d]", errs.ErrInvalidOperation, pos, f.start, f.end)
	}

	if _, err := f.ws.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", pos, err)
	}
	f.pos = pos

	return nil
}
