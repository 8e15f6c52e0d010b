package window

import (
	"math"
	"testing"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/stretchr/testify/require"
)

func TestWindow_ShrinksMonotonically(t *testing.T) {
	require := require.New(t)

	engine := endian.GetLittleEndianEngine()
	buf := []byte{0xAA}
	buf = engine.AppendUint32(buf, 4326)
	buf = engine.AppendUint64(buf, math.Float64bits(30.0))

	w := New(buf)
	require.Equal(13, w.Len())

	b, err := w.ReadByte()
	require.NoError(err)
	require.Equal(byte(0xAA), b)
	require.Equal(12, w.Len())

	srid, err := w.ReadInt32(engine)
	require.NoError(err)
	require.Equal(int32(4326), srid)
	require.Equal(8, w.Len())

	x, err := w.ReadFloat64(engine)
	require.NoError(err)
	require.Equal(30.0, x)
	require.Zero(w.Len())
	require.Empty(w.Bytes())

	_, err = w.ReadByte()
	require.ErrorIs(err, errs.ErrInsufficientData)
	require.Zero(w.Len(), "failed read must not consume")
}

func TestWindow_ShortRead(t *testing.T) {
	w := New([]byte{1, 2, 3})

	_, err := w.ReadUint32(endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrInsufficientData)
	require.Equal(t, 3, w.Len())

	_, err = w.ReadFloat64(endian.GetBigEndianEngine())
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	require.NoError(t, w.Skip(3))
	require.ErrorIs(t, w.Skip(1), errs.ErrInsufficientData)
}

func TestWindow_At(t *testing.T) {
	w := New([]byte{0, 1, 2, 3, 4, 5})
	require.NoError(t, w.Skip(1))

	b, err := w.At(0)
	require.NoError(t, err)
	require.Equal(t, byte(1), b)

	_, err = w.At(5)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = w.At(-1)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	require.Equal(t, []byte{1, 2, 3, 4, 5}, w.Bytes())
	require.Equal(t, 5, w.Len(), "At must not consume")
}
