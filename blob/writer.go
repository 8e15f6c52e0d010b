package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/geoblob/encoding"
	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/options"
	"github.com/arloliu/geoblob/section"
	"github.com/arloliu/geoblob/sink"
	"go.uber.org/zap"
)

// Writer encodes geometries as blobs into a caller-owned sink.
//
// Each Write call emits one complete blob at the current sink position.
// When the sink can seek, the envelope is reserved and back-patched after the
// body has been written; otherwise it is computed up front and written in
// place. A Writer is not safe for concurrent use.
type Writer struct {
	sink   sink.Sink
	engine endian.EndianEngine
	sugar  *zap.SugaredLogger
	count  int
}

// NewWriter creates a writer targeting s.
func NewWriter(s sink.Sink, opts ...WriterOption) (*Writer, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil sink", errs.ErrInvalidOperation)
	}

	cfg := newWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Writer{
		sink:   s,
		engine: cfg.engine,
		sugar:  cfg.logger.Sugar(),
	}, nil
}

// Count returns the number of blobs written so far.
func (w *Writer) Count() int {
	return w.count
}

// Engine returns the byte order of the blobs written.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Write encodes g with the given SRID.
//
// On error the sink holds a partial blob; the caller must discard it.
func (w *Writer) Write(g geom.Geometry, srid int32) error {
	if g == nil {
		return fmt.Errorf("%w: nil geometry", errs.ErrInvalidGeometryType)
	}
	if err := encoding.ValidateGeometry(g); err != nil {
		return err
	}

	if !sink.CanSeek(w.sink) {
		return w.writeInPlace(g, srid)
	}

	return w.writePatched(srid, func(enc *encoding.Encoder) error {
		return enc.WriteGeometry(g)
	})
}

// WriteMultiPointSeq encodes a multipoint from a sequence of unknown length
// and returns the number of points written.
//
// The sink must be seekable; otherwise ErrInvalidOperation is returned before
// anything is written. dim sets the type code of an empty sequence.
func (w *Writer) WriteMultiPointSeq(seq iter.Seq[geom.Point], srid int32, dim format.Dimension) (int, error) {
	return writeSeq(w, format.TypeMultiPoint, srid, func(enc *encoding.Encoder) (int, error) {
		return enc.WriteMultiPointSeq(seq, dim)
	})
}

// WriteMultiLineStringSeq is WriteMultiPointSeq for line strings.
func (w *Writer) WriteMultiLineStringSeq(seq iter.Seq[geom.LineString], srid int32, dim format.Dimension) (int, error) {
	return writeSeq(w, format.TypeMultiLineString, srid, func(enc *encoding.Encoder) (int, error) {
		return enc.WriteMultiLineStringSeq(seq, dim)
	})
}

// WriteMultiPolygonSeq is WriteMultiPointSeq for polygons.
func (w *Writer) WriteMultiPolygonSeq(seq iter.Seq[geom.Polygon], srid int32, dim format.Dimension) (int, error) {
	return writeSeq(w, format.TypeMultiPolygon, srid, func(enc *encoding.Encoder) (int, error) {
		return enc.WriteMultiPolygonSeq(seq, dim)
	})
}

func writeSeq(w *Writer, base format.BaseType, srid int32, body func(*encoding.Encoder) (int, error)) (int, error) {
	if !sink.CanSeek(w.sink) {
		return 0, fmt.Errorf("%w: writing %s of unknown length requires a seekable sink, got %T",
			errs.ErrInvalidOperation, base, w.sink)
	}

	var n int
	err := w.writePatched(srid, func(enc *encoding.Encoder) error {
		var err error
		n, err = body(enc)

		return err
	})
	if err != nil {
		return n, err
	}

	w.sugar.Debugw("back-patched multi-geometry", "type", base, "count", n, "srid", srid)

	return n, nil
}

// writePatched writes a header with an envelope placeholder, the body, the
// envelope patch and the end marker.
func (w *Writer) writePatched(srid int32, body func(*encoding.Encoder) error) error {
	start := w.sink.Position()

	ph, err := section.WriteHeader(w.sink, srid, w.engine)
	if err != nil {
		return err
	}

	env := geom.EmptyEnvelope()
	if err := body(encoding.NewEncoder(w.sink, w.engine, &env)); err != nil {
		return err
	}

	if env.IsEmpty() {
		w.sugar.Debugw("no coordinates written, keeping zero envelope", "srid", srid, "offset", start)
	} else if err := section.PatchEnvelope(w.sink, ph, env, w.engine); err != nil {
		return err
	}

	return w.finish(start)
}

func (w *Writer) writeInPlace(g geom.Geometry, srid int32) error {
	start := w.sink.Position()

	if err := section.WriteHeaderWithEnvelope(w.sink, srid, geom.EnvelopeOf(g), w.engine); err != nil {
		return err
	}
	if err := encoding.NewEncoder(w.sink, w.engine, nil).WriteGeometry(g); err != nil {
		return err
	}

	return w.finish(start)
}

func (w *Writer) finish(start int64) error {
	if _, err := w.sink.Write([]byte{section.EndMarker}); err != nil {
		return err
	}

	w.count++
	w.sugar.Debugw("wrote blob", "offset", start, "size", w.sink.Position()-start)

	return nil
}
