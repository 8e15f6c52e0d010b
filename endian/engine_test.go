package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFlag(t *testing.T) {
	require := require.New(t)

	engine, ok := FromFlag(FlagLittleEndian)
	require.True(ok)
	require.Equal(binary.LittleEndian, engine)

	engine, ok = FromFlag(FlagBigEndian)
	require.True(ok)
	require.Equal(binary.BigEndian, engine)

	for _, flag := range []byte{0x02, 0x7C, 0xFF} {
		engine, ok = FromFlag(flag)
		require.False(ok, "flag 0x%02x", flag)
		require.Nil(engine)
	}
}

func TestFlagRoundTrip(t *testing.T) {
	require.Equal(t, FlagLittleEndian, Flag(GetLittleEndianEngine()))
	require.Equal(t, FlagBigEndian, Flag(GetBigEndianEngine()))
	require.True(t, IsLittleEndian(GetLittleEndianEngine()))
	require.False(t, IsLittleEndian(GetBigEndianEngine()))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	bytes := make([]byte, 4)
	engine.PutUint32(bytes, 4326)
	require.Equal(t, []byte{0xE6, 0x10, 0x00, 0x00}, bytes)
	require.Equal(t, uint32(4326), engine.Uint32(bytes))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	bytes := make([]byte, 4)
	engine.PutUint32(bytes, 4326)
	require.Equal(t, []byte{0x00, 0x00, 0x10, 0xE6}, bytes)
	require.Equal(t, uint32(4326), engine.Uint32(bytes))
}

func TestEngines_Float64Bits(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	val := 30.5
	lb := little.AppendUint64(nil, math.Float64bits(val))
	bb := big.AppendUint64(nil, math.Float64bits(val))

	require.NotEqual(t, lb, bb)
	require.Equal(t, val, math.Float64frombits(little.Uint64(lb)))
	require.Equal(t, val, math.Float64frombits(big.Uint64(bb)))

	// Same bytes, reversed
	for i := range lb {
		require.Equal(t, lb[i], bb[len(bb)-1-i])
	}
}
