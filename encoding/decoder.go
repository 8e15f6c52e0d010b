package encoding

import (
	"fmt"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/window"
	"github.com/arloliu/geoblob/section"
)

// Decoder reads geometry bodies from a window.
//
// The Read methods take the type code already read from the window and
// consume the payload that follows it. Decoded values never alias the
// underlying buffer.
type Decoder struct {
	w      *window.Window
	engine endian.EndianEngine
}

// NewDecoder creates a decoder consuming w in the byte order of engine.
func NewDecoder(w *window.Window, engine endian.EndianEngine) *Decoder {
	return &Decoder{w: w, engine: engine}
}

// ReadTypeCode consumes a geometry type code.
func (d *Decoder) ReadTypeCode() (format.TypeCode, error) {
	v, err := d.w.ReadInt32(d.engine)
	return format.TypeCode(v), err
}

// ReadGeometry decodes the payload declared by code.
//
// Geometry collections and the generic type are not supported and fail with
// ErrInvalidGeometryType, as do compressed variants and invalid dimensions.
func (d *Decoder) ReadGeometry(code format.TypeCode) (geom.Geometry, error) {
	if err := ValidateTypeCode(code); err != nil {
		return nil, err
	}

	switch code.Base() {
	case format.TypePoint:
		return d.ReadPoint(code)
	case format.TypeLineString:
		return d.ReadLineString(code)
	case format.TypePolygon:
		return d.ReadPolygon(code)
	case format.TypeMultiPoint:
		return d.ReadMultiPoint(code)
	case format.TypeMultiLineString:
		return d.ReadMultiLineString(code)
	case format.TypeMultiPolygon:
		return d.ReadMultiPolygon(code)
	default:
		return nil, fmt.Errorf("%w: %s geometries are not supported", errs.ErrInvalidGeometryType, code.Base())
	}
}

// ReadPoint decodes a point payload.
func (d *Decoder) ReadPoint(code format.TypeCode) (geom.Point, error) {
	if err := CheckType(code, format.TypePoint); err != nil {
		return geom.Point{}, err
	}

	c, err := ReadCoord(d.w, code.Dimension(), d.engine)
	if err != nil {
		return geom.Point{}, err
	}

	return geom.Point{Dim: code.Dimension(), Coord: c}, nil
}

// ReadLineString decodes a line payload.
func (d *Decoder) ReadLineString(code format.TypeCode) (geom.LineString, error) {
	if err := CheckType(code, format.TypeLineString); err != nil {
		return geom.LineString{}, err
	}

	coords, err := d.readCoords(code.Dimension())
	if err != nil {
		return geom.LineString{}, err
	}

	return geom.LineString{Dim: code.Dimension(), Coords: coords}, nil
}

// ReadPolygon decodes a polygon payload.
func (d *Decoder) ReadPolygon(code format.TypeCode) (geom.Polygon, error) {
	if err := CheckType(code, format.TypePolygon); err != nil {
		return geom.Polygon{}, err
	}

	dim := code.Dimension()

	n, err := d.readCount(section.CountSize)
	if err != nil {
		return geom.Polygon{}, err
	}

	var rings []geom.LinearRing
	if n > 0 {
		rings = make([]geom.LinearRing, 0, n)
	}
	for range n {
		coords, err := d.readCoords(dim)
		if err != nil {
			return geom.Polygon{}, err
		}
		rings = append(rings, coords)
	}

	return geom.Polygon{Dim: dim, Rings: rings}, nil
}

// ReadMultiPoint decodes a multipoint payload.
func (d *Decoder) ReadMultiPoint(code format.TypeCode) (geom.MultiPoint, error) {
	if err := CheckType(code, format.TypeMultiPoint); err != nil {
		return geom.MultiPoint{}, err
	}

	points, err := readEntities(d, section.EntityPrefix+2*section.CoordSize, d.ReadPoint)
	if err != nil {
		return geom.MultiPoint{}, err
	}

	return geom.MultiPoint{Dim: code.Dimension(), Points: points}, nil
}

// ReadMultiLineString decodes a multilinestring payload.
func (d *Decoder) ReadMultiLineString(code format.TypeCode) (geom.MultiLineString, error) {
	if err := CheckType(code, format.TypeMultiLineString); err != nil {
		return geom.MultiLineString{}, err
	}

	lines, err := readEntities(d, section.EntityPrefix+section.CountSize, d.ReadLineString)
	if err != nil {
		return geom.MultiLineString{}, err
	}

	return geom.MultiLineString{Dim: code.Dimension(), LineStrings: lines}, nil
}

// ReadMultiPolygon decodes a multipolygon payload.
func (d *Decoder) ReadMultiPolygon(code format.TypeCode) (geom.MultiPolygon, error) {
	if err := CheckType(code, format.TypeMultiPolygon); err != nil {
		return geom.MultiPolygon{}, err
	}

	polygons, err := readEntities(d, section.EntityPrefix+section.CountSize, d.ReadPolygon)
	if err != nil {
		return geom.MultiPolygon{}, err
	}

	return geom.MultiPolygon{Dim: code.Dimension(), Polygons: polygons}, nil
}

// readEntities decodes count-prefixed, marker-tagged elements and checks that
// the end marker follows the last one. minSize is the smallest encoded size
// of one element including its prefix.
func readEntities[T any](d *Decoder, minSize int, read func(format.TypeCode) (T, error)) ([]T, error) {
	n, err := d.readCount(minSize)
	if err != nil {
		return nil, err
	}

	var elems []T
	if n > 0 {
		elems = make([]T, 0, n)
	}

	for i := range n {
		marker, err := d.w.ReadByte()
		if err != nil {
			return nil, err
		}
		if marker != section.EntityMarker {
			return nil, fmt.Errorf("%w: element %d: entity marker is 0x%02x, want 0x%02x",
				errs.ErrInvalidOperation, i, marker, section.EntityMarker)
		}

		code, err := d.ReadTypeCode()
		if err != nil {
			return nil, err
		}

		elem, err := read(code)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, elem)
	}

	if b, err := d.w.At(0); err != nil || b != section.EndMarker {
		return nil, fmt.Errorf("%w: end marker missing after %d elements", errs.ErrInvalidOperation, n)
	}

	return elems, nil
}

func (d *Decoder) readCoords(dim format.Dimension) ([]geom.Coord, error) {
	size := CoordSize(dim)

	n, err := d.readCount(size)
	if err != nil {
		return nil, err
	}

	var coords []geom.Coord
	if n > 0 {
		coords = make([]geom.Coord, 0, n)
	}
	for range n {
		c, err := ReadCoord(d.w, dim, d.engine)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}

	return coords, nil
}

// readCount consumes an element count and rejects counts whose minimal
// encoding cannot fit in the rest of the window.
func (d *Decoder) readCount(minSize int) (int, error) {
	v, err := d.w.ReadUint32(d.engine)
	if err != nil {
		return 0, err
	}

	if need := uint64(v) * uint64(minSize); need > uint64(d.w.Len()) { //nolint: gosec
		return 0, fmt.Errorf("%w: count %d needs at least %d bytes, have %d",
			errs.ErrInsufficientData, v, need, d.w.Len())
	}

	return int(v), nil
}
