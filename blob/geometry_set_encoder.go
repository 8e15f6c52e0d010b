package blob

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/arloliu/geoblob/compress"
	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/collision"
	"github.com/arloliu/geoblob/internal/encoding"
	"github.com/arloliu/geoblob/internal/hash"
	"github.com/arloliu/geoblob/internal/options"
	"github.com/arloliu/geoblob/section"
	"github.com/arloliu/geoblob/sink"
	"go.uber.org/zap"
)

// featureID maps a feature name to its ID.
var featureID = hash.ID

// identifierMode records whether a set is keyed by caller IDs or by names.
type identifierMode uint8

const (
	modeUnset identifierMode = iota
	modeID
	modeName
)

// GeometrySetEncoder bundles many geometry blobs into one geometry set.
//
// Features are keyed either by caller-supplied 64-bit IDs or by names, whose
// xxHash64 becomes the ID; the first Add call decides which. Blobs are
// appended to an in-memory payload; Finish writes the header, index, optional
// names payload and the (optionally compressed) payload.
//
// A GeometrySetEncoder is not safe for concurrent use.
type GeometrySetEncoder struct {
	header   *section.SetHeader
	engine   endian.EndianEngine
	codec    compress.Codec
	tracker  *collision.Tracker
	entries  []section.SetIndexEntry
	payload  *sink.Buffer
	writer   *Writer
	sugar    *zap.SugaredLogger
	stats    compress.CompressionStats
	mode     identifierMode
	finished bool
}

// NewGeometrySetEncoder creates an empty geometry set encoder.
func NewGeometrySetEncoder(opts ...GeometrySetOption) (*GeometrySetEncoder, error) {
	cfg := newGeometrySetConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.flag.Compression())
	if err != nil {
		return nil, err
	}

	header := section.NewSetHeader()
	header.Flag = cfg.flag

	endianOpt := WithLittleEndian()
	if !cfg.flag.IsLittleEndian() {
		endianOpt = WithBigEndian()
	}

	payload := sink.NewSetBuffer()
	writer, err := NewWriter(payload, endianOpt, WithLogger(cfg.logger))
	if err != nil {
		payload.Release()
		return nil, err
	}

	return &GeometrySetEncoder{
		header:  header,
		engine:  header.Flag.GetEndianEngine(),
		codec:   codec,
		tracker: collision.NewTracker(),
		payload: payload,
		writer:  writer,
		sugar:   cfg.logger.Sugar(),
	}, nil
}

// Len returns the number of features added so far.
func (e *GeometrySetEncoder) Len() int {
	return len(e.entries)
}

// AddGeometry encodes g and adds it under the caller-supplied feature ID.
func (e *GeometrySetEncoder) AddGeometry(id uint64, g geom.Geometry, srid int32) error {
	if err := e.prepare(modeID); err != nil {
		return err
	}

	return e.add(modeID, id, func() error { return e.writer.Write(g, srid) }, func() error { return e.tracker.TrackID(id) })
}

// AddNamedGeometry encodes g and adds it under the feature name.
//
// Names that hash to the same ID are kept apart by storing the names payload.
func (e *GeometrySetEncoder) AddNamedGeometry(name string, g geom.Geometry, srid int32) error {
	if err := e.prepare(modeName); err != nil {
		return err
	}
	if name == "" {
		return errs.ErrInvalidFeatureName
	}

	id := featureID(name)

	return e.add(modeName, id, func() error { return e.writer.Write(g, srid) }, func() error { return e.tracker.TrackName(name, id) })
}

// AddBlob adds an already encoded blob under the caller-supplied feature ID.
// The blob is fully decoded once to make sure it is well formed.
func (e *GeometrySetEncoder) AddBlob(id uint64, blob []byte) error {
	if err := e.prepare(modeID); err != nil {
		return err
	}

	rec, err := NewRecord(blob)
	if err != nil {
		return err
	}
	if _, err := rec.Geometry(); err != nil {
		return err
	}

	return e.add(modeID, id, func() error {
		_, err := e.payload.Write(blob)
		return err
	}, func() error { return e.tracker.TrackID(id) })
}

func (e *GeometrySetEncoder) prepare(mode identifierMode) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if e.mode != modeUnset && e.mode != mode {
		return errs.ErrMixedIdentifierMode
	}
	if uint64(len(e.entries)) >= section.SetMaxFeatureCount {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyFeatures, uint64(section.SetMaxFeatureCount))
	}

	return nil
}

// add writes one blob with write, registers the feature with track and
// records its index entry. The payload is rolled back when either step fails.
// A successful add locks the identifier mode.
func (e *GeometrySetEncoder) add(mode identifierMode, id uint64, write func() error, track func() error) error {
	start := e.payload.Len()

	if err := write(); err != nil {
		return e.rollback(start, err)
	}

	end := e.payload.Len()
	if uint64(end) > math.MaxUint32 {
		return e.rollback(start, fmt.Errorf("%w: payload exceeds %d bytes", errs.ErrInvalidSetOffsets, uint64(math.MaxUint32)))
	}

	if err := track(); err != nil {
		return e.rollback(start, err)
	}

	e.mode = mode
	e.entries = append(e.entries, section.NewSetIndexEntry(id, uint32(start), uint32(end-start))) //nolint: gosec

	return nil
}

func (e *GeometrySetEncoder) rollback(start int, cause error) error {
	if err := e.payload.Truncate(start); err != nil {
		return err
	}

	return cause
}

// Finish assembles the geometry set and returns its bytes.
//
// The encoder cannot be used after Finish.
func (e *GeometrySetEncoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer e.payload.Release()

	raw := e.payload.Bytes()

	began := time.Now()
	stored, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress geometry set payload: %w", err)
	}
	e.stats = compress.CompressionStats{
		Algorithm:         e.header.Flag.Compression(),
		OriginalSize:      int64(len(raw)),
		CompressedSize:    int64(len(stored)),
		CompressionTimeNs: time.Since(began).Nanoseconds(),
	}

	out := sink.NewSetBuffer()
	defer out.Release()

	headerPh, err := sink.Reserve(out, section.SetHeaderSize)
	if err != nil {
		return nil, err
	}

	index := make([]byte, 0, len(e.entries)*section.SetIndexEntrySize)
	for _, entry := range e.entries {
		index = entry.Append(index, e.engine)
	}
	if _, err := out.Write(index); err != nil {
		return nil, err
	}

	hasNames := e.tracker.HasCollision()
	if hasNames {
		e.header.NamesOffset = uint32(out.Position()) //nolint: gosec
		names, err := encoding.EncodeFeatureNames(nil, e.tracker.Names(), e.engine)
		if err != nil {
			return nil, err
		}
		if _, err := out.Write(names); err != nil {
			return nil, err
		}
	}
	e.header.Flag.SetHasFeatureNames(hasNames)

	e.header.PayloadOffset = uint32(out.Position()) //nolint: gosec
	if _, err := out.Write(stored); err != nil {
		return nil, err
	}

	if uint64(out.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: geometry set exceeds %d bytes", errs.ErrInvalidSetOffsets, uint64(math.MaxUint32))
	}

	e.header.FeatureCount = uint32(len(e.entries)) //nolint: gosec
	e.header.PayloadSize = uint32(len(raw))        //nolint: gosec
	e.header.Checksum = hash.Checksum(stored)

	if err := sink.Patch(out, headerPh, e.header.Bytes()); err != nil {
		return nil, err
	}

	e.sugar.Debugw("finished geometry set",
		"features", len(e.entries),
		"featureNames", hasNames,
		"compression", e.stats.Algorithm,
		"payloadSize", e.stats.OriginalSize,
		"storedSize", e.stats.CompressedSize,
		"ratio", e.stats.CompressionRatio(),
	)

	return slices.Clone(out.Bytes()), nil
}

// Stats returns the payload compression statistics of the last Finish call.
func (e *GeometrySetEncoder) Stats() compress.CompressionStats {
	return e.stats
}
