package compress

// ZstdCompressor gives the best compression ratio of the built-in codecs,
// which suits geometry sets kept in cold storage or sent over slow links.
//
// With cgo enabled it is backed by the reference C library (gozstd);
// otherwise by the pure Go klauspost/compress implementation. Both produce
// standard zstd frames and decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
