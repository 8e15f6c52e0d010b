package blob

import (
	"fmt"

	"github.com/arloliu/geoblob/encoding"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/window"
	"github.com/arloliu/geoblob/section"
)

// Record is a read-only view over one encoded geometry blob.
//
// A Record borrows its buffer and keeps no decoded state: every accessor
// re-parses the header from the start of the buffer. Concurrent reads are
// safe as long as the buffer is not mutated.
type Record struct {
	data []byte
}

// NewRecord wraps data after validating its header.
//
// Returns ErrInvalidData when data is shorter than 45 bytes or a header
// marker is wrong.
func NewRecord(data []byte) (Record, error) {
	if _, err := section.ParseHeader(data); err != nil {
		return Record{}, err
	}

	return Record{data: data}, nil
}

// Bytes returns the underlying buffer.
func (r Record) Bytes() []byte {
	return r.data
}

// Header parses and returns the blob header.
func (r Record) Header() (section.Header, error) {
	return section.ParseHeader(r.data)
}

// SRID returns the spatial reference identifier.
func (r Record) SRID() (int32, error) {
	h, err := r.Header()
	return h.SRID, err
}

// Envelope returns the envelope stored in the header.
// Blobs of geometries without coordinates carry the zero envelope.
func (r Record) Envelope() (geom.Envelope, error) {
	h, err := r.Header()
	return h.Envelope, err
}

// TypeCode returns the declared geometry type code.
func (r Record) TypeCode() (format.TypeCode, error) {
	h, err := r.Header()
	return h.TypeCode, err
}

// IsLittleEndian reports whether the blob uses little-endian byte order.
func (r Record) IsLittleEndian() (bool, error) {
	h, err := r.Header()
	return h.LittleEndian, err
}

// Geometry decodes the blob into the geometry type it declares.
func (r Record) Geometry() (geom.Geometry, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadGeometry)
}

// GetPoint decodes a point blob.
// Returns ErrInvalidGeometryType when the blob declares another type.
func (r Record) GetPoint() (geom.Point, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadPoint)
}

// GetLineString decodes a line string blob.
func (r Record) GetLineString() (geom.LineString, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadLineString)
}

// GetPolygon decodes a polygon blob.
func (r Record) GetPolygon() (geom.Polygon, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadPolygon)
}

// GetMultiPoint decodes a multipoint blob.
func (r Record) GetMultiPoint() (geom.MultiPoint, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadMultiPoint)
}

// GetMultiLineString decodes a multilinestring blob.
func (r Record) GetMultiLineString() (geom.MultiLineString, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadMultiLineString)
}

// GetMultiPolygon decodes a multipolygon blob.
func (r Record) GetMultiPolygon() (geom.MultiPolygon, error) {
	return decodeBody(r.data, (*encoding.Decoder).ReadMultiPolygon)
}

// decodeBody parses the header, decodes the body with read and verifies that
// exactly the end marker remains.
func decodeBody[T any](data []byte, read func(*encoding.Decoder, format.TypeCode) (T, error)) (T, error) {
	var zero T

	w := window.New(data)
	h, err := section.DecodeHeader(&w)
	if err != nil {
		return zero, err
	}

	v, err := read(encoding.NewDecoder(&w, h.Engine()), h.TypeCode)
	if err != nil {
		return zero, err
	}

	if w.Len() != section.EndSize || w.Bytes()[0] != section.EndMarker {
		return zero, fmt.Errorf("%w: last byte was not the end marker (%d bytes left after the %s body)",
			errs.ErrInvalidOperation, w.Len(), h.TypeCode)
	}

	return v, nil
}
