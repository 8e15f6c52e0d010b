package encoding

import (
	"math"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/window"
	"github.com/arloliu/geoblob/section"
)

// CoordSize returns the encoded size of one coordinate tuple of dim.
func CoordSize(dim format.Dimension) int {
	return dim.Stride() * section.CoordSize
}

// AppendCoord appends the components of c declared by dim to b.
func AppendCoord(b []byte, c geom.Coord, dim format.Dimension, engine endian.EndianEngine) []byte {
	b = engine.AppendUint64(b, math.Float64bits(c.X))
	b = engine.AppendUint64(b, math.Float64bits(c.Y))
	if dim.HasZ() {
		b = engine.AppendUint64(b, math.Float64bits(c.Z))
	}
	if dim.HasM() {
		b = engine.AppendUint64(b, math.Float64bits(c.M))
	}

	return b
}

// ReadCoord reads one coordinate tuple of dim from w.
// Components absent from dim are left at zero.
func ReadCoord(w *window.Window, dim format.Dimension, engine endian.EndianEngine) (geom.Coord, error) {
	var c geom.Coord

	raw, err := w.Next(CoordSize(dim))
	if err != nil {
		return c, err
	}

	c.X = math.Float64frombits(engine.Uint64(raw[0:8]))
	c.Y = math.Float64frombits(engine.Uint64(raw[8:16]))
	raw = raw[16:]

	if dim.HasZ() {
		c.Z = math.Float64frombits(engine.Uint64(raw[0:8]))
		raw = raw[8:]
	}
	if dim.HasM() {
		c.M = math.Float64frombits(engine.Uint64(raw[0:8]))
	}

	return c, nil
}
