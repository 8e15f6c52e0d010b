package blob

import (
	"fmt"

	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/internal/options"
	"github.com/arloliu/geoblob/section"
	"go.uber.org/zap"
)

// GeometrySetConfig holds the configuration of a GeometrySetEncoder.
type GeometrySetConfig struct {
	flag   section.SetFlag
	logger *zap.Logger
}

func newGeometrySetConfig() *GeometrySetConfig {
	return &GeometrySetConfig{
		flag:   section.NewSetFlag(),
		logger: zap.NewNop(),
	}
}

func (c *GeometrySetConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.flag.SetCompression(comp)
		return nil
	default:
		return fmt.Errorf("invalid geometry set compression: %v", comp)
	}
}

// GeometrySetOption represents a functional option for configuring a GeometrySetEncoder.
type GeometrySetOption = options.Option[*GeometrySetConfig]

// WithSetCompression sets the payload compression. The default is no compression.
func WithSetCompression(comp format.CompressionType) GeometrySetOption {
	return options.New(func(c *GeometrySetConfig) error {
		return c.setCompression(comp)
	})
}

// WithSetLittleEndian stores the set and its blobs in little-endian byte order.
// It is the default option.
func WithSetLittleEndian() GeometrySetOption {
	return options.NoError(func(c *GeometrySetConfig) {
		c.flag.WithLittleEndian()
	})
}

// WithSetBigEndian stores the set and its blobs in big-endian byte order.
func WithSetBigEndian() GeometrySetOption {
	return options.NoError(func(c *GeometrySetConfig) {
		c.flag.WithBigEndian()
	})
}

// WithSetLogger sets the logger used for debug output. A nil logger disables logging.
func WithSetLogger(logger *zap.Logger) GeometrySetOption {
	return options.NoError(func(c *GeometrySetConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
