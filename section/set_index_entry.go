package section

import (
	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
)

// SetIndexEntry locates one geometry blob inside the uncompressed set payload.
type SetIndexEntry struct {
	// FeatureID is the caller-supplied feature ID or the xxHash64 of the feature name.
	//
	// Offset: 0, Size: 8 bytes
	FeatureID uint64
	// Offset is the absolute byte offset of the blob in the uncompressed payload.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32
	// Length is the byte length of the blob.
	//
	// Offset: 12, Size: 4 bytes
	Length uint32
}

// NewSetIndexEntry creates an index entry.
func NewSetIndexEntry(featureID uint64, offset, length uint32) SetIndexEntry {
	return SetIndexEntry{FeatureID: featureID, Offset: offset, Length: length}
}

// End returns the payload offset just past the blob.
func (e SetIndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

// Append appends the 16-byte encoding of the entry to b.
func (e SetIndexEntry) Append(b []byte, engine endian.EndianEngine) []byte {
	b = engine.AppendUint64(b, e.FeatureID)
	b = engine.AppendUint32(b, e.Offset)

	return engine.AppendUint32(b, e.Length)
}

// ParseSetIndexEntry parses an index entry from exactly SetIndexEntrySize bytes.
func ParseSetIndexEntry(data []byte, engine endian.EndianEngine) (SetIndexEntry, error) {
	if len(data) != SetIndexEntrySize {
		return SetIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return SetIndexEntry{
		FeatureID: engine.Uint64(data[0:8]),
		Offset:    engine.Uint32(data[8:12]),
		Length:    engine.Uint32(data[12:16]),
	}, nil
}
