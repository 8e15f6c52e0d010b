// Package hash provides the 64-bit hashes used by geometry sets.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the feature ID of a feature name (xxHash64).
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 of a stored geometry set payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
