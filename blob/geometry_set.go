package blob

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/geoblob/compress"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/encoding"
	"github.com/arloliu/geoblob/internal/hash"
	"github.com/arloliu/geoblob/section"
)

// GeometrySet is a decoded geometry set giving random access to its records.
//
// Records borrow the decompressed payload; with CompressionNone that is the
// buffer passed to DecodeGeometrySet, which must then stay unmodified.
// A GeometrySet is immutable and safe for concurrent reads.
type GeometrySet struct {
	header  section.SetHeader
	entries []section.SetIndexEntry
	payload []byte
	names   []string
	byID    map[uint64]int
	byName  map[string]int
}

// DecodeGeometrySet parses and validates a geometry set.
//
// The header, offsets and payload checksum are verified, the payload is
// decompressed and every blob header is checked once.
func DecodeGeometrySet(data []byte) (*GeometrySet, error) {
	header, err := section.ParseSetHeader(data)
	if err != nil {
		return nil, err
	}

	engine := header.Flag.GetEndianEngine()
	count := uint64(header.FeatureCount)
	size := uint64(len(data))

	if header.IndexOffset != section.SetIndexOffset {
		return nil, fmt.Errorf("%w: index offset %d, want %d", errs.ErrInvalidSetOffsets, header.IndexOffset, section.SetIndexOffset)
	}
	indexEnd := uint64(section.SetIndexOffset) + count*section.SetIndexEntrySize
	if indexEnd > size {
		return nil, fmt.Errorf("%w: index of %d entries exceeds %d bytes", errs.ErrInvalidSetOffsets, count, size)
	}

	payloadOffset := uint64(header.PayloadOffset)
	if payloadOffset < indexEnd || payloadOffset > size {
		return nil, fmt.Errorf("%w: payload offset %d outside [%d, %d]", errs.ErrInvalidSetOffsets, payloadOffset, indexEnd, size)
	}

	set := &GeometrySet{
		header:  header,
		entries: make([]section.SetIndexEntry, header.FeatureCount),
		byID:    make(map[uint64]int, header.FeatureCount),
	}

	for i := range set.entries {
		off := section.SetIndexOffset + i*section.SetIndexEntrySize
		if set.entries[i], err = section.ParseSetIndexEntry(data[off:off+section.SetIndexEntrySize], engine); err != nil {
			return nil, err
		}
		if _, exists := set.byID[set.entries[i].FeatureID]; !exists {
			set.byID[set.entries[i].FeatureID] = i
		}
	}

	if header.Flag.HasFeatureNames() {
		if err := set.decodeNames(data[:payloadOffset], indexEnd); err != nil {
			return nil, err
		}
	} else if header.NamesOffset != 0 {
		return nil, fmt.Errorf("%w: names offset %d without feature names flag", errs.ErrInvalidSetOffsets, header.NamesOffset)
	}

	stored := data[payloadOffset:]
	if sum := hash.Checksum(stored); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	if set.payload, err = codec.Decompress(stored, int(header.PayloadSize)); err != nil {
		return nil, err
	}

	for i, entry := range set.entries {
		if entry.End() > uint64(len(set.payload)) {
			return nil, fmt.Errorf("%w: feature %d spans [%d, %d) beyond payload of %d bytes",
				errs.ErrInvalidSetOffsets, i, entry.Offset, entry.End(), len(set.payload))
		}
		if _, err := section.ParseHeader(set.blob(i)); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
	}

	return set, nil
}

func (s *GeometrySet) decodeNames(data []byte, indexEnd uint64) error {
	if uint64(s.header.NamesOffset) != indexEnd {
		return fmt.Errorf("%w: names offset %d, want %d", errs.ErrInvalidSetOffsets, s.header.NamesOffset, indexEnd)
	}

	names, _, err := encoding.DecodeFeatureNames(data[indexEnd:], s.header.Flag.GetEndianEngine())
	if err != nil {
		return err
	}
	if err := encoding.VerifyFeatureNames(names, s.IDs(), featureID); err != nil {
		return err
	}

	s.names = names
	s.byName = make(map[string]int, len(names))
	for i, name := range names {
		s.byName[name] = i
	}

	return nil
}

func (s *GeometrySet) blob(i int) []byte {
	entry := s.entries[i]
	return s.payload[entry.Offset:entry.End():entry.End()]
}

// Len returns the number of features.
func (s *GeometrySet) Len() int {
	return len(s.entries)
}

// Compression returns the payload compression of the set.
func (s *GeometrySet) Compression() format.CompressionType {
	return s.header.Flag.Compression()
}

// HasFeatureNames reports whether the set stores its feature names.
// Names are only stored when two of them hash to the same ID.
func (s *GeometrySet) HasFeatureNames() bool {
	return s.names != nil
}

// IDs returns the feature IDs in index order.
func (s *GeometrySet) IDs() []uint64 {
	ids := make([]uint64, len(s.entries))
	for i, entry := range s.entries {
		ids[i] = entry.FeatureID
	}

	return ids
}

// Names returns the stored feature names, or nil when the set has none.
func (s *GeometrySet) Names() []string {
	return slices.Clone(s.names)
}

// Record returns the record of the feature with the given ID.
// With colliding names, the first feature with that ID is returned.
func (s *GeometrySet) Record(id uint64) (Record, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}

	return Record{data: s.blob(i)}, true
}

// RecordByName returns the record of the named feature.
func (s *GeometrySet) RecordByName(name string) (Record, bool) {
	if s.byName != nil {
		i, ok := s.byName[name]
		if !ok {
			return Record{}, false
		}

		return Record{data: s.blob(i)}, true
	}

	return s.Record(featureID(name))
}

// RecordAt returns the i-th record in index order.
func (s *GeometrySet) RecordAt(i int) (Record, bool) {
	if i < 0 || i >= len(s.entries) {
		return Record{}, false
	}

	return Record{data: s.blob(i)}, true
}

// All iterates over the feature IDs and records in index order.
func (s *GeometrySet) All() iter.Seq2[uint64, Record] {
	return func(yield func(uint64, Record) bool) {
		for i, entry := range s.entries {
			if !yield(entry.FeatureID, Record{data: s.blob(i)}) {
				return
			}
		}
	}
}

// Envelope returns the envelope of every feature in the set.
//
// Header envelopes are merged directly. A zero envelope is ambiguous (an
// empty geometry or a single point at the origin), so those records are
// decoded to find out.
func (s *GeometrySet) Envelope() (geom.Envelope, error) {
	env := geom.EmptyEnvelope()

	for i := range s.entries {
		rec := Record{data: s.blob(i)}

		h, err := rec.Header()
		if err != nil {
			return env, err
		}
		if h.Envelope != (geom.Envelope{}) {
			env.Merge(h.Envelope)
			continue
		}

		g, err := rec.Geometry()
		if err != nil {
			return env, fmt.Errorf("feature %d: %w", i, err)
		}
		env.Merge(geom.EnvelopeOf(g))
	}

	return env, nil
}
