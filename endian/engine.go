// Package endian provides byte order utilities for the geometry blob codec.
//
// Every geometry blob declares its byte order in the second header byte
// (1 = little-endian, 0 = big-endian) and all multi-byte fields that follow
// use that order. This package maps the flag to an EndianEngine, which
// combines binary.ByteOrder and binary.AppendByteOrder so that decoders can
// read fields in place and encoders can append them without scratch copies.
//
// # Basic Usage
//
//	engine, ok := endian.FromFlag(data[1])
//	if !ok {
//	    return errs.ErrInvalidData
//	}
//	srid := int32(engine.Uint32(data[2:6]))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// Byte order flags as stored in a blob header.
const (
	FlagBigEndian    byte = 0x00
	FlagLittleEndian byte = 0x01
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// FromFlag returns the engine named by a header endianness flag.
// The second result is false for any flag other than FlagLittleEndian or FlagBigEndian.
func FromFlag(flag byte) (EndianEngine, bool) {
	switch flag {
	case FlagLittleEndian:
		return binary.LittleEndian, true
	case FlagBigEndian:
		return binary.BigEndian, true
	default:
		return nil, false
	}
}

// IsLittleEndian reports whether engine writes little-endian fields.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// Flag returns the header endianness flag for engine.
func Flag(engine EndianEngine) byte {
	if IsLittleEndian(engine) {
		return FlagLittleEndian
	}

	return FlagBigEndian
}
