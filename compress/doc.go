// Package compress provides the payload codecs of geometry sets.
//
// A geometry set stores its concatenated blobs as one payload that may be
// compressed with a general-purpose algorithm. Coordinates of neighbouring
// features tend to share exponent and high mantissa bytes, so even the fast
// codecs usually shrink a payload noticeably.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Every codec is a stateless value:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(stored, originalSize)
//
// Decompress always receives the uncompressed size recorded in the set
// header and fails with errs.ErrPayloadSizeMismatch when the output differs.
package compress
