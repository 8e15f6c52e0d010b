package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/section"
	"github.com/arloliu/geoblob/sink"
)

// Encoder writes geometry bodies (type code and payload) to a sink.
//
// Every coordinate written is reported to the envelope passed to NewEncoder,
// if any. An Encoder is not safe for concurrent use.
type Encoder struct {
	sink   sink.Sink
	engine endian.EndianEngine
	env    *geom.Envelope
	buf    []byte
}

// NewEncoder creates an encoder writing to s in the byte order of engine.
// env may be nil when the caller does not need the envelope.
func NewEncoder(s sink.Sink, engine endian.EndianEngine, env *geom.Envelope) *Encoder {
	return &Encoder{
		sink:   s,
		engine: engine,
		env:    env,
		buf:    make([]byte, 0, 256),
	}
}

// WriteGeometry writes the body of g, dispatching on its concrete type.
func (e *Encoder) WriteGeometry(g geom.Geometry) error {
	switch v := g.(type) {
	case geom.Point:
		return e.WritePoint(v)
	case geom.LineString:
		return e.WriteLineString(v)
	case geom.Polygon:
		return e.WritePolygon(v)
	case geom.MultiPoint:
		return e.WriteMultiPoint(v)
	case geom.MultiLineString:
		return e.WriteMultiLineString(v)
	case geom.MultiPolygon:
		return e.WriteMultiPolygon(v)
	default:
		return fmt.Errorf("%w: cannot encode %T", errs.ErrInvalidGeometryType, g)
	}
}

// WritePoint writes the type code and coordinate tuple of p.
func (e *Encoder) WritePoint(p geom.Point) error {
	if err := ValidateGeometry(p); err != nil {
		return err
	}

	return e.flush(e.appendPoint(e.buf[:0], p))
}

// WriteLineString writes the type code, point count and tuples of l.
func (e *Encoder) WriteLineString(l geom.LineString) error {
	if err := ValidateGeometry(l); err != nil {
		return err
	}
	if err := checkCount(len(l.Coords)); err != nil {
		return err
	}

	return e.flush(e.appendLineString(e.buf[:0], l))
}

// WritePolygon writes the type code, ring count and rings of p.
func (e *Encoder) WritePolygon(p geom.Polygon) error {
	if err := ValidateGeometry(p); err != nil {
		return err
	}
	if err := checkCount(len(p.Rings)); err != nil {
		return err
	}
	for _, r := range p.Rings {
		if err := checkCount(len(r)); err != nil {
			return err
		}
	}

	return e.flush(e.appendPolygon(e.buf[:0], p))
}

// WriteMultiPoint writes a multipoint whose element count is known up front.
func (e *Encoder) WriteMultiPoint(m geom.MultiPoint) error {
	return writeMulti(e, m, m.Points, e.WritePoint)
}

// WriteMultiLineString writes a multilinestring whose element count is known up front.
func (e *Encoder) WriteMultiLineString(m geom.MultiLineString) error {
	return writeMulti(e, m, m.LineStrings, e.WriteLineString)
}

// WriteMultiPolygon writes a multipolygon whose element count is known up front.
func (e *Encoder) WriteMultiPolygon(m geom.MultiPolygon) error {
	return writeMulti(e, m, m.Polygons, e.WritePolygon)
}

// WriteMultiPointSeq writes a multipoint from a one-pass sequence of unknown
// length and returns the number of elements written.
//
// The type code and count are reserved and back-patched once the sequence is
// exhausted, so the sink must be a sink.Seeker; otherwise ErrInvalidOperation
// is returned before anything is written. dim is used for the type code when
// the sequence is empty.
func (e *Encoder) WriteMultiPointSeq(seq iter.Seq[geom.Point], dim format.Dimension) (int, error) {
	return writeMultiSeq(e, format.TypeMultiPoint, dim, seq, e.WritePoint)
}

// WriteMultiLineStringSeq is WriteMultiPointSeq for line strings.
func (e *Encoder) WriteMultiLineStringSeq(seq iter.Seq[geom.LineString], dim format.Dimension) (int, error) {
	return writeMultiSeq(e, format.TypeMultiLineString, dim, seq, e.WriteLineString)
}

// WriteMultiPolygonSeq is WriteMultiPointSeq for polygons.
func (e *Encoder) WriteMultiPolygonSeq(seq iter.Seq[geom.Polygon], dim format.Dimension) (int, error) {
	return writeMultiSeq(e, format.TypeMultiPolygon, dim, seq, e.WritePolygon)
}

func writeMulti[T geom.Geometry](e *Encoder, m geom.Geometry, elems []T, write func(T) error) error {
	if err := ValidateGeometry(m); err != nil {
		return err
	}
	code := m.TypeCode()
	if err := checkCount(len(elems)); err != nil {
		return err
	}

	b := e.engine.AppendUint32(e.buf[:0], uint32(code))
	b = e.engine.AppendUint32(b, uint32(len(elems))) //nolint: gosec
	if err := e.flush(b); err != nil {
		return err
	}

	for _, elem := range elems {
		if err := writeEntity(e, elem, write); err != nil {
			return err
		}
	}

	return nil
}

func writeMultiSeq[T geom.Geometry](e *Encoder, base format.BaseType, dim format.Dimension, seq iter.Seq[T], write func(T) error) (int, error) {
	// The reserved fields are patched after iteration, so a forward-only sink
	// must be rejected before the first byte is written.
	if !sink.CanSeek(e.sink) {
		return 0, fmt.Errorf("%w: writing %s of unknown length requires a seekable sink, got %T",
			errs.ErrInvalidOperation, base, e.sink)
	}

	if err := validateDimension(base, dim); err != nil {
		return 0, err
	}
	code := format.NewTypeCode(base, dim)

	codePh, err := sink.Reserve(e.sink, 4)
	if err != nil {
		return 0, err
	}
	countPh, err := sink.Reserve(e.sink, section.CountSize)
	if err != nil {
		return 0, err
	}

	n := 0
	for elem := range seq {
		if n == 0 {
			code = format.NewTypeCode(base, elem.TypeCode().Dimension())
		}
		if n == section.MaxEntities {
			return n, fmt.Errorf("%w: more than %d elements", errs.ErrInvalidOperation, section.MaxEntities)
		}
		if err := writeEntity(e, elem, write); err != nil {
			return n, err
		}
		n++
	}

	if err := sink.PatchInt32(e.sink, codePh, e.engine, int32(code)); err != nil {
		return n, err
	}
	if err := sink.PatchUint32(e.sink, countPh, e.engine, uint32(n)); err != nil { //nolint: gosec
		return n, err
	}

	return n, nil
}

// writeEntity writes the entity marker followed by the element body.
func writeEntity[T geom.Geometry](e *Encoder, elem T, write func(T) error) error {
	if _, err := e.sink.Write([]byte{section.EntityMarker}); err != nil {
		return err
	}

	return write(elem)
}

func (e *Encoder) appendPoint(b []byte, p geom.Point) []byte {
	b = e.engine.AppendUint32(b, uint32(p.TypeCode()))
	return e.appendCoord(b, p.Coord, p.Dim)
}

func (e *Encoder) appendLineString(b []byte, l geom.LineString) []byte {
	b = e.engine.AppendUint32(b, uint32(l.TypeCode()))
	return e.appendCoords(b, l.Coords, l.Dim)
}

func (e *Encoder) appendPolygon(b []byte, p geom.Polygon) []byte {
	b = e.engine.AppendUint32(b, uint32(p.TypeCode()))
	b = e.engine.AppendUint32(b, uint32(len(p.Rings))) //nolint: gosec
	for _, r := range p.Rings {
		b = e.appendCoords(b, r, p.Dim)
	}

	return b
}

func (e *Encoder) appendCoords(b []byte, coords []geom.Coord, dim format.Dimension) []byte {
	b = e.engine.AppendUint32(b, uint32(len(coords))) //nolint: gosec
	for _, c := range coords {
		b = e.appendCoord(b, c, dim)
	}

	return b
}

func (e *Encoder) appendCoord(b []byte, c geom.Coord, dim format.Dimension) []byte {
	if e.env != nil {
		e.env.Extend(c)
	}

	return AppendCoord(b, c, dim, e.engine)
}

// flush writes b to the sink and keeps its backing array as scratch space.
func (e *Encoder) flush(b []byte) error {
	e.buf = b[:0]
	_, err := e.sink.Write(b)

	return err
}

func checkCount(n int) error {
	if n > section.MaxEntities {
		return fmt.Errorf("%w: %d elements exceed the %d element limit", errs.ErrInvalidOperation, n, section.MaxEntities)
	}

	return nil
}
