package compress

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/stretchr/testify/require"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// coordinatePayload mimics a run of XY coordinates of nearby features.
func coordinatePayload(n int) []byte {
	out := make([]byte, 0, n*16)
	for i := range n {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(121.5+float64(i)*1e-4))
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(25.03+float64(i%7)*1e-4))
	}

	return out
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"coordinates": coordinatePayload(1000),
		"small":       []byte("geoblob"),
		"repeated":    bytes.Repeat([]byte{0x69, 0x01, 0x00, 0x00, 0x00}, 512),
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, data := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed, len(data))
				require.NoError(t, err)
				require.Equal(t, data, restored)
			})
		}
	}
}

func TestCodecs_Empty(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed, 0)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCodecs_SizeMismatch(t *testing.T) {
	data := coordinatePayload(64)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(data)+1)
			require.Error(t, err)
		})
	}
}

func TestCodecs_ForgedSize(t *testing.T) {
	data := coordinatePayload(64)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			for _, size := range []int{-1, MaxDecompressedSize + 1, math.MaxInt32} {
				_, err = codec.Decompress(compressed, size)
				require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch, "size %d", size)
			}
		})
	}
}

func TestLZ4_ExpansionBound(t *testing.T) {
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress([]byte("geoblob"))
	require.NoError(t, err)

	// within the global cap but beyond what an LZ4 block of this length can hold
	_, err = codec.Decompress(compressed, 1<<20)
	require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
}

func TestCodecs_Shrink(t *testing.T) {
	data := coordinatePayload(4096)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), ct.String())
	}
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x9))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())
	require.Zero(t, CompressionStats{}.SpaceSavings())
}
