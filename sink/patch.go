package sink

import (
	"fmt"
	"math"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
)

// Placeholder records a reserved fixed-width field in a sink.
type Placeholder struct {
	Pos   int64
	Width int
}

var zeros [64]byte

// Reserve writes width zero bytes at the current position and returns the
// placeholder for a later Patch.
func Reserve(s Sink, width int) (Placeholder, error) {
	if width < 0 || width > len(zeros) {
		return Placeholder{}, fmt.Errorf("%w: placeholder width %d out of range", errs.ErrInvalidOperation, width)
	}

	ph := Placeholder{Pos: s.Position(), Width: width}
	if _, err := s.Write(zeros[:width]); err != nil {
		return Placeholder{}, err
	}

	return ph, nil
}

// Patch overwrites the placeholder with data and restores the write position.
//
// s must be a Seeker; patching a forward-only sink is a caller error and
// fails with ErrInvalidOperation without touching the sink.
func Patch(s Sink, ph Placeholder, data []byte) error {
	seeker, ok := s.(Seeker)
	if !ok {
		return fmt.Errorf("%w: sink %T cannot seek to patch offset %d", errs.ErrInvalidOperation, s, ph.Pos)
	}
	if len(data) != ph.Width {
		return fmt.Errorf("%w: patch of %d bytes into %d-byte placeholder", errs.ErrInvalidOperation, len(data), ph.Width)
	}

	cur := s.Position()
	if ph.Pos < 0 || ph.Pos+int64(ph.Width) > cur {
		return fmt.Errorf("%w: placeholder [%d, %d) not behind write position %d",
			errs.ErrInvalidOperation, ph.Pos, ph.Pos+int64(ph.Width), cur)
	}

	if err := seeker.SeekTo(ph.Pos); err != nil {
		return err
	}
	if _, err := s.Write(data); err != nil {
		return err
	}

	return seeker.SeekTo(cur)
}

// PatchUint32 patches a 4-byte placeholder with v.
func PatchUint32(s Sink, ph Placeholder, engine endian.EndianEngine, v uint32) error {
	var b [4]byte
	engine.PutUint32(b[:], v)

	return Patch(s, ph, b[:])
}

// PatchInt32 patches a 4-byte placeholder with v.
func PatchInt32(s Sink, ph Placeholder, engine endian.EndianEngine, v int32) error {
	return PatchUint32(s, ph, engine, uint32(v)) //nolint: gosec
}

// PatchUint64 patches an 8-byte placeholder with v.
func PatchUint64(s Sink, ph Placeholder, engine endian.EndianEngine, v uint64) error {
	var b [8]byte
	engine.PutUint64(b[:], v)

	return Patch(s, ph, b[:])
}

// PatchFloat64s patches a placeholder of 8×len(vals) bytes with the IEEE-754 bits of vals.
func PatchFloat64s(s Sink, ph Placeholder, engine endian.EndianEngine, vals ...float64) error {
	b := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		b = engine.AppendUint64(b, math.Float64bits(v))
	}

	return Patch(s, ph, b)
}
