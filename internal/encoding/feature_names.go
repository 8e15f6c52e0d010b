package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
)

// EncodeFeatureNames appends the feature names payload to b.
// Format: [Count: uint16] [Len1: uint16][Name1: UTF-8] [Len2: uint16][Name2: UTF-8] ...
func EncodeFeatureNames(b []byte, names []string, engine endian.EndianEngine) ([]byte, error) {
	if len(names) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d names exceed maximum %d", errs.ErrInvalidNamesCount, len(names), math.MaxUint16)
	}

	size := 2
	for _, name := range names {
		if len(name) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: name of %d bytes exceeds maximum %d", errs.ErrInvalidFeatureName, len(name), math.MaxUint16)
		}
		size += 2 + len(name)
	}

	b = growBytes(b, size)
	b = engine.AppendUint16(b, uint16(len(names))) //nolint: gosec
	for _, name := range names {
		b = engine.AppendUint16(b, uint16(len(name))) //nolint: gosec
		b = append(b, name...)
	}

	return b, nil
}

// DecodeFeatureNames decodes a feature names payload and returns the names
// and the number of bytes consumed.
func DecodeFeatureNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read names count (need 2 bytes, have %d)", errs.ErrInvalidNamesPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2

	// Every name needs at least its length prefix.
	if count*2 > len(data)-offset {
		return nil, 0, fmt.Errorf("%w: %d names cannot fit in %d bytes", errs.ErrInvalidNamesPayload, count, len(data)-offset)
	}

	names := make([]string, count)
	for i := range names {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of name %d at offset %d", errs.ErrInvalidNamesPayload, i, offset)
		}

		n := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+n {
			return nil, 0, fmt.Errorf("%w: name %d needs %d bytes at offset %d, have %d",
				errs.ErrInvalidNamesPayload, i, n, offset, len(data)-offset)
		}

		names[i] = string(data[offset : offset+n])
		offset += n
	}

	return names, offset, nil
}

// VerifyFeatureNames checks that hashFunc(names[i]) == ids[i] for every i.
func VerifyFeatureNames(names []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(ids) {
		return fmt.Errorf("%w: %d names for %d features", errs.ErrInvalidNamesCount, len(names), len(ids))
	}

	for i, name := range names {
		if want := hashFunc(name); want != ids[i] {
			return fmt.Errorf("%w: name %q at index %d hashes to 0x%016x, index holds 0x%016x",
				errs.ErrHashMismatch, name, i, want, ids[i])
		}
	}

	return nil
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}

	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
