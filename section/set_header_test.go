package section

import (
	"testing"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/stretchr/testify/require"
)

func TestNewSetHeader(t *testing.T) {
	header := NewSetHeader()

	require.Equal(t, uint32(SetIndexOffset), header.IndexOffset)
	require.Equal(t, uint32(0), header.FeatureCount)
	require.Equal(t, uint16(MagicGeometrySetV1Opt), header.Flag.GetMagicNumber())
	require.True(t, header.Flag.IsLittleEndian())
	require.False(t, header.Flag.HasFeatureNames())
	require.Equal(t, format.CompressionNone, header.Flag.Compression())
	require.NoError(t, header.Flag.Validate())
}

func TestSetHeader_Parse(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		original := NewSetHeader()
		if bigEndian {
			original.Flag.WithBigEndian()
		}
		original.Flag.SetHasFeatureNames(true)
		original.Flag.SetCompression(format.CompressionZstd)
		original.FeatureCount = 3
		original.NamesOffset = 80
		original.PayloadOffset = 120
		original.PayloadSize = 4096
		original.Checksum = 0xDEADBEEFCAFEBABE

		data := original.Bytes()
		require.Len(t, data, SetHeaderSize)

		parsed, err := ParseSetHeader(data)
		require.NoError(t, err)
		require.Equal(t, *original, parsed)
		require.Equal(t, !bigEndian, parsed.Flag.IsLittleEndian())
	}
}

func TestSetHeader_ParseErrors(t *testing.T) {
	t.Run("Invalid size", func(t *testing.T) {
		_, err := ParseSetHeader([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidSetHeaderSize)

		h := &SetHeader{}
		require.ErrorIs(t, h.Parse(make([]byte, SetHeaderSize+1)), errs.ErrInvalidSetHeaderSize)
	})

	t.Run("Invalid magic number", func(t *testing.T) {
		_, err := ParseSetHeader(make([]byte, SetHeaderSize))
		require.ErrorIs(t, err, errs.ErrInvalidSetHeaderFlags)
	})

	t.Run("Reserved bits set", func(t *testing.T) {
		data := NewSetHeader().Bytes()
		data[0] |= 0x04
		_, err := ParseSetHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidSetHeaderFlags)
	})

	t.Run("Unknown compression", func(t *testing.T) {
		data := NewSetHeader().Bytes()
		data[2] = 0x09
		_, err := ParseSetHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidSetHeaderFlags)
	})
}

func TestSetFlag_Endianness(t *testing.T) {
	flag := NewSetFlag()
	require.Equal(t, endian.GetLittleEndianEngine(), flag.GetEndianEngine())

	flag.WithBigEndian()
	require.False(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetBigEndianEngine(), flag.GetEndianEngine())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())

	flag.SetHasFeatureNames(true)
	flag.SetHasFeatureNames(false)
	require.Equal(t, uint16(MagicGeometrySetV1Opt), flag.Options)
}

func TestSetIndexEntry(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		entry := NewSetIndexEntry(0x0102030405060708, 96, 60)
		data := entry.Append(nil, engine)
		require.Len(t, data, SetIndexEntrySize)

		parsed, err := ParseSetIndexEntry(data, engine)
		require.NoError(t, err)
		require.Equal(t, entry, parsed)
		require.Equal(t, uint64(156), parsed.End())
	}

	_, err := ParseSetIndexEntry(make([]byte, 8), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
