// Package errs defines the sentinel errors returned by geoblob.
//
// Callers match them with errors.Is; the returned errors usually wrap one of
// these values with additional context about the offending offset or value.
package errs

import "errors"

// Codec error kinds.
var (
	// ErrInvalidData is returned when a blob is too short to hold a header or
	// one of its fixed markers is wrong.
	ErrInvalidData = errors.New("invalid data")
	// ErrInvalidGeometryType is returned when the declared geometry type does not
	// match the requested shape, or the type code is unsupported.
	ErrInvalidGeometryType = errors.New("invalid geometry type")
	// ErrInvalidOperation is returned for missing entity/end markers and for
	// patch requests against sinks that cannot seek.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInsufficientData is returned when a field runs past the end of the window.
	ErrInsufficientData = errors.New("insufficient data")
)

// Geometry set errors.
var (
	ErrInvalidSetHeaderSize  = errors.New("invalid geometry set header size")
	ErrInvalidSetHeaderFlags = errors.New("invalid geometry set header flags")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrInvalidSetOffsets     = errors.New("invalid geometry set offsets")
	ErrChecksumMismatch      = errors.New("geometry set payload checksum mismatch")
	ErrPayloadSizeMismatch   = errors.New("decompressed payload size mismatch")
	ErrInvalidCompression    = errors.New("invalid compression type")
	ErrHashCollision         = errors.New("feature ID collision")
	ErrHashMismatch          = errors.New("feature name hash mismatch")
	ErrFeatureAlreadyAdded   = errors.New("feature already added")
	ErrInvalidFeatureName    = errors.New("invalid feature name")
	ErrInvalidNamesCount     = errors.New("invalid feature names count")
	ErrInvalidNamesPayload   = errors.New("invalid feature names payload")
	ErrMixedIdentifierMode   = errors.New("cannot mix feature IDs and feature names in one set")
	ErrTooManyFeatures       = errors.New("too many features")
	ErrEncoderFinished       = errors.New("encoder already finished")
)
