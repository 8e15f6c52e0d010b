// Package geoblob reads and writes vector geometries in the internal BLOB
// format of a spatial-database extension.
//
// A blob holds one geometry (point, line string, polygon or one of their
// multi-part variants, in XY, XYZ, XYM or XYZM) together with its SRID and
// bounding envelope:
//
//	offset  size  field
//	0       1     start marker 0x00
//	1       1     endianness (1 = little, 0 = big)
//	2       4     SRID
//	6       32    envelope minX, minY, maxX, maxY
//	38      1     MBR marker 0x7C
//	39      4     geometry type code
//	43      ...   geometry body
//	n-1     1     end marker 0xFE
//
// # Basic Usage
//
// Encoding and decoding a single geometry:
//
//	data, err := geoblob.Encode(geom.NewPoint(121.56, 25.03), 4326)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g, srid, err := geoblob.Decode(data)
//
// Reading only the header fields or one expected geometry type:
//
//	rec, err := geoblob.NewRecord(data)
//	env, err := rec.Envelope()
//	poly, err := rec.GetPolygon()
//
// Multi-geometries of unknown length are streamed into a seekable sink and
// their counts back-patched:
//
//	buf := sink.NewBuffer()
//	defer buf.Release()
//	w, _ := geoblob.NewWriter(buf)
//	n, err := w.WriteMultiPointSeq(points, 4326, format.DimXY)
//
// # Geometry Sets
//
// A geometry set bundles many blobs, keyed by 64-bit feature IDs, with an
// optionally compressed payload:
//
//	enc, _ := geoblob.NewGeometrySetEncoder(blob.WithSetCompression(format.CompressionZstd))
//	enc.AddNamedGeometry("depot", depot, 4326)
//	data, _ := enc.Finish()
//
//	set, _ := geoblob.DecodeGeometrySet(data)
//	rec, ok := set.RecordByName("depot")
//
// This package provides top-level wrappers around the blob package. For
// finer control, use the blob, section and encoding packages directly.
package geoblob

import (
	"github.com/arloliu/geoblob/blob"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/hash"
	"github.com/arloliu/geoblob/sink"
)

// Encode encodes g with the given SRID into a new blob.
//
// Blobs are little-endian unless blob.WithBigEndian is passed.
func Encode(g geom.Geometry, srid int32, opts ...blob.WriterOption) ([]byte, error) {
	return blob.Encode(g, srid, opts...)
}

// Decode decodes a complete blob into its geometry and SRID.
func Decode(data []byte) (geom.Geometry, int32, error) {
	return blob.Decode(data)
}

// NewRecord wraps data for header and typed geometry access.
//
// The record borrows data; it must not be modified while the record is in use.
func NewRecord(data []byte) (blob.Record, error) {
	return blob.NewRecord(data)
}

// NewWriter creates a writer that appends blobs to s.
//
// Use sink.NewBuffer or sink.NewFile for unknown-length multi-geometries;
// a sink.Stream only supports geometries whose parts are known up front.
func NewWriter(s sink.Sink, opts ...blob.WriterOption) (*blob.Writer, error) {
	return blob.NewWriter(s, opts...)
}

// NewGeometrySetEncoder creates an encoder that bundles many blobs into one
// geometry set.
//
// Available options:
//   - blob.WithSetCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithSetLittleEndian() / blob.WithSetBigEndian()
//   - blob.WithSetLogger(logger)
func NewGeometrySetEncoder(opts ...blob.GeometrySetOption) (*blob.GeometrySetEncoder, error) {
	return blob.NewGeometrySetEncoder(opts...)
}

// DecodeGeometrySet parses and validates a geometry set.
func DecodeGeometrySet(data []byte) (*blob.GeometrySet, error) {
	return blob.DecodeGeometrySet(data)
}

// FeatureID converts a feature name to the 64-bit ID used by geometry sets.
//
// IDs are the xxHash64 of the name. Use it to look up a feature added with
// AddNamedGeometry through GeometrySet.Record:
//
//	rec, ok := set.Record(geoblob.FeatureID("depot"))
func FeatureID(name string) uint64 {
	return hash.ID(name)
}
