package section

import (
	"github.com/arloliu/geoblob/errs"
)

// SetHeader is the fixed 32-byte header of a geometry set.
//
//	offset  size  field
//	0       2     options (always little-endian)
//	2       1     payload compression type
//	3       1     reserved
//	4       4     feature count
//	8       4     index offset
//	12      4     feature names offset, 0 when absent
//	16      4     payload offset
//	20      4     uncompressed payload size
//	24      8     xxHash64 of the stored payload
type SetHeader struct {
	// FeatureCount is the number of geometries in the set.
	FeatureCount uint32 // byte offset 4-7
	// IndexOffset is the byte offset of the index entries.
	IndexOffset uint32 // byte offset 8-11
	// NamesOffset is the byte offset of the feature names payload, or 0.
	NamesOffset uint32 // byte offset 12-15
	// PayloadOffset is the byte offset of the stored (possibly compressed) payload.
	PayloadOffset uint32 // byte offset 16-19
	// PayloadSize is the size of the payload after decompression.
	PayloadSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the stored payload bytes.
	Checksum uint64 // byte offset 24-31

	Flag SetFlag // byte offset 0-3
}

// Field offsets inside SetHeader.
const (
	SetFeatureCountOffset  = 4
	SetIndexOffsetOffset   = 8
	SetNamesOffsetOffset   = 12
	SetPayloadOffsetOffset = 16
	SetPayloadSizeOffset   = 20
	SetChecksumOffset      = 24
)

// NewSetHeader creates a header with default flags. Counts and offsets are
// filled in when the set encoder finishes.
func NewSetHeader() *SetHeader {
	return &SetHeader{
		Flag:        NewSetFlag(),
		IndexOffset: SetIndexOffset,
	}
}

// Parse parses the header from exactly SetHeaderSize bytes.
func (h *SetHeader) Parse(data []byte) error {
	if len(data) != SetHeaderSize {
		return errs.ErrInvalidSetHeaderSize
	}

	// Options are always little-endian so the byte order can be discovered.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.FeatureCount = engine.Uint32(data[SetFeatureCountOffset:])
	h.IndexOffset = engine.Uint32(data[SetIndexOffsetOffset:])
	h.NamesOffset = engine.Uint32(data[SetNamesOffsetOffset:])
	h.PayloadOffset = engine.Uint32(data[SetPayloadOffsetOffset:])
	h.PayloadSize = engine.Uint32(data[SetPayloadSizeOffset:])
	h.Checksum = engine.Uint64(data[SetChecksumOffset:])

	return nil
}

// Bytes serializes the header.
func (h *SetHeader) Bytes() []byte {
	b := make([]byte, SetHeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	engine.PutUint32(b[SetFeatureCountOffset:], h.FeatureCount)
	engine.PutUint32(b[SetIndexOffsetOffset:], h.IndexOffset)
	engine.PutUint32(b[SetNamesOffsetOffset:], h.NamesOffset)
	engine.PutUint32(b[SetPayloadOffsetOffset:], h.PayloadOffset)
	engine.PutUint32(b[SetPayloadSizeOffset:], h.PayloadSize)
	engine.PutUint64(b[SetChecksumOffset:], h.Checksum)

	return b
}

// ParseSetHeader parses a SetHeader from the front of data.
func ParseSetHeader(data []byte) (SetHeader, error) {
	if len(data) < SetHeaderSize {
		return SetHeader{}, errs.ErrInvalidSetHeaderSize
	}

	h := SetHeader{}
	if err := h.Parse(data[:SetHeaderSize]); err != nil {
		return SetHeader{}, err
	}

	return h, nil
}
