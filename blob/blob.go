package blob

import (
	"slices"

	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/sink"
)

// Encode encodes g into a new blob.
func Encode(g geom.Geometry, srid int32, opts ...WriterOption) ([]byte, error) {
	buf := sink.NewBuffer()
	defer buf.Release()

	w, err := NewWriter(buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Write(g, srid); err != nil {
		return nil, err
	}

	return slices.Clone(buf.Bytes()), nil
}

// Decode decodes a blob into its geometry and SRID.
func Decode(data []byte) (geom.Geometry, int32, error) {
	rec, err := NewRecord(data)
	if err != nil {
		return nil, 0, err
	}

	g, err := rec.Geometry()
	if err != nil {
		return nil, 0, err
	}

	srid, err := rec.SRID()

	return g, srid, err
}
