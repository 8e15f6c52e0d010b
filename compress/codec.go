package compress

import (
	"fmt"

	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
)

// Compressor compresses a geometry set payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not
	// modified; the result may alias it for codecs that do not transform data.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload. size is the uncompressed size
	// recorded next to the payload; a result of any other length is an error.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression.
//
// Codecs are stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one payload compression.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the size of the payload before compression.
	OriginalSize int64
	// CompressedSize is the size of the stored payload.
	CompressedSize int64
	// CompressionTimeNs is the time taken to compress the payload.
	CompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 for an
// empty payload. Values below 1.0 mean the payload shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// checkSize verifies the length of a decompressed payload.
func checkSize(out []byte, size int, algorithm format.CompressionType) ([]byte, error) {
	if len(out) != size {
		return nil, fmt.Errorf("%w: %s payload decompressed to %d bytes, want %d",
			errs.ErrPayloadSizeMismatch, algorithm, len(out), size)
	}

	return out, nil
}

// MaxDecompressedSize caps the uncompressed payload size a Decompressor
// accepts. The size comes from an untrusted header and is checked before
// any buffer is allocated.
const MaxDecompressedSize = 128 * 1024 * 1024

// checkBound rejects a declared size that cannot be honoured before the
// output buffer is allocated. maxRatio bounds the expansion of one input
// byte; zero means the algorithm has no useful bound.
func checkBound(data []byte, size int, maxRatio int, algorithm format.CompressionType) error {
	if size < 0 || size > MaxDecompressedSize {
		return fmt.Errorf("%w: %s payload declares %d bytes, limit is %d",
			errs.ErrPayloadSizeMismatch, algorithm, size, MaxDecompressedSize)
	}
	if maxRatio > 0 && size > maxRatio*len(data)+16 {
		return fmt.Errorf("%w: %s payload of %d bytes cannot expand to %d bytes",
			errs.ErrPayloadSizeMismatch, algorithm, len(data), size)
	}

	return nil
}
