// Package blob provides the high-level APIs for encoding and decoding geometry
// blobs and geometry sets.
//
// # Blobs
//
// A blob is the self-describing binary form of one geometry: a header with the
// SRID, byte order and envelope, the geometry body, and an end marker.
//
// Writer encodes geometries into a sink.Sink:
//
//	buf := sink.NewBuffer()
//	defer buf.Release()
//
//	w, err := blob.NewWriter(buf, blob.WithBigEndian())
//	if err != nil {
//	    return err
//	}
//	err = w.Write(geom.NewPoint(30, 10), 4326)
//
// When the sink can seek, the envelope is reserved in the header and patched
// once the body is written. Multi geometries of unknown length can be written
// from an iter.Seq with WriteMultiPointSeq and friends; their type code and
// element count are patched as well, so those methods require a seekable sink.
//
// Record decodes a blob without copying it. Every accessor re-parses the
// header, so a Record holds no state besides the borrowed buffer:
//
//	rec, err := blob.NewRecord(data)
//	srid, err := rec.SRID()
//	poly, err := rec.GetPolygon() // ErrInvalidGeometryType for other types
//
// Encode and Decode wrap both for one-off use.
//
// # Geometry Sets
//
// GeometrySetEncoder bundles many blobs, keyed by feature ID or name, into one
// indexed buffer whose payload may be compressed. DecodeGeometrySet validates
// it and gives random access to the records:
//
//	enc, _ := blob.NewGeometrySetEncoder(blob.WithSetCompression(format.CompressionZstd))
//	_ = enc.AddNamedGeometry("parcel/17", parcel, 3826)
//	data, _ := enc.Finish()
//
//	set, _ := blob.DecodeGeometrySet(data)
//	rec, ok := set.RecordByName("parcel/17")
package blob
