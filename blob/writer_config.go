package blob

import (
	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/internal/options"
	"go.uber.org/zap"
)

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt    endianness = iota
)

func (e endianness) engine() endian.EndianEngine {
	if e == bigEndianOpt {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// WriterConfig holds the configuration of a Writer.
type WriterConfig struct {
	engine endian.EndianEngine
	logger *zap.Logger
}

func newWriterConfig() *WriterConfig {
	return &WriterConfig{
		engine: endian.GetLittleEndianEngine(),
		logger: zap.NewNop(),
	}
}

// WriterOption represents a functional option for configuring a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithLittleEndian makes the writer emit little-endian blobs.
// It is the default option.
func WithLittleEndian() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.engine = littleEndianOpt.engine()
	})
}

// WithBigEndian makes the writer emit big-endian blobs.
func WithBigEndian() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.engine = bigEndianOpt.engine()
	})
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(logger *zap.Logger) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
