package section

import (
	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
)

// SetFlag is the packed options and compression field of a geometry set header.
type SetFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is set when the feature names payload is present.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number 0xC510 identifying geometry set v1.
	Options uint16

	// CompressionType is the compression applied to the blob payload.
	CompressionType uint8
}

var validSetCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewSetFlag creates a little-endian, uncompressed flag.
func NewSetFlag() SetFlag {
	return SetFlag{
		Options:         MagicGeometrySetV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// HasFeatureNames returns whether the feature names payload is present.
func (f SetFlag) HasFeatureNames() bool {
	return (f.Options & FeatureNamesMask) != 0
}

// SetHasFeatureNames enables or disables the feature names payload.
func (f *SetFlag) SetHasFeatureNames(enabled bool) {
	if enabled {
		f.Options |= FeatureNamesMask
	} else {
		f.Options &^= FeatureNamesMask
	}
}

// IsLittleEndian returns whether the set uses little-endian byte order.
func (f SetFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *SetFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *SetFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f SetFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f SetFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *SetFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits and compression type.
func (f SetFlag) Validate() error {
	if f.GetMagicNumber() != MagicGeometrySetV1Opt {
		return errs.ErrInvalidSetHeaderFlags
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidSetHeaderFlags
	}

	if _, ok := validSetCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidSetHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the endian engine named by the flag.
func (f SetFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
