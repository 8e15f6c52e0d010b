package sink

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/stretchr/testify/require"
)

func TestBuffer_WriteAndSeek(t *testing.T) {
	require := require.New(t)

	b := NewBuffer()
	defer b.Release()

	_, err := b.Write([]byte{1, 2, 3, 4, 5})
	require.NoError(err)
	require.Equal(int64(5), b.Position())

	require.NoError(b.SeekTo(1))
	_, err = b.Write([]byte{9, 9})
	require.NoError(err)
	require.Equal(int64(3), b.Position())
	require.Equal([]byte{1, 9, 9, 4, 5}, b.Bytes())
	require.Equal(5, b.Len())

	require.ErrorIs(b.SeekTo(6), errs.ErrInvalidOperation)
	require.ErrorIs(b.SeekTo(-1), errs.ErrInvalidOperation)

	b.Reset()
	require.Zero(b.Len())
	require.Zero(b.Position())
}

func TestBuffer_Released(t *testing.T) {
	b := NewSetBuffer()
	b.Release()

	_, err := b.Write([]byte{1})
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.ErrorIs(t, b.SeekTo(0), errs.ErrInvalidOperation)
	require.Nil(t, b.Bytes())
	require.Zero(t, b.Len())
}

func TestBuffer_Truncate(t *testing.T) {
	require := require.New(t)

	b := NewBuffer()
	defer b.Release()

	_, err := b.Write([]byte{1, 2, 3, 4, 5})
	require.NoError(err)

	require.NoError(b.Truncate(2))
	require.Equal([]byte{1, 2}, b.Bytes())
	require.Equal(int64(2), b.Position())

	_, err = b.Write([]byte{7})
	require.NoError(err)
	require.Equal([]byte{1, 2, 7}, b.Bytes())

	require.ErrorIs(b.Truncate(4), errs.ErrInvalidOperation)
	require.ErrorIs(b.Truncate(-1), errs.ErrInvalidOperation)
}

func TestCanSeek(t *testing.T) {
	require.True(t, CanSeek(NewBuffer()))
	require.False(t, CanSeek(NewStream(io.Discard)))

	f, err := NewFile(tempFile(t))
	require.NoError(t, err)
	require.True(t, CanSeek(f))
}

func TestReserveAndPatch(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	b := NewBuffer()
	defer b.Release()

	_, _ = b.Write([]byte{0xAA})
	ph, err := Reserve(b, 4)
	require.NoError(t, err)
	require.Equal(t, Placeholder{Pos: 1, Width: 4}, ph)
	_, _ = b.Write([]byte{0xBB})

	require.NoError(t, PatchUint32(b, ph, engine, 0x01020304))
	require.Equal(t, int64(6), b.Position(), "patch must restore the write position")
	require.Equal(t, []byte{0xAA, 0x04, 0x03, 0x02, 0x01, 0xBB}, b.Bytes())

	// Subsequent writes still append.
	_, _ = b.Write([]byte{0xCC})
	require.Equal(t, byte(0xCC), b.Bytes()[6])
}

func TestPatch_Errors(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	t.Run("non-seekable sink", func(t *testing.T) {
		var out bytes.Buffer
		s := NewStream(&out)

		ph, err := Reserve(s, 4)
		require.NoError(t, err)
		require.Equal(t, 4, out.Len())

		err = PatchInt32(s, ph, engine, 7)
		require.ErrorIs(t, err, errs.ErrInvalidOperation)
		require.Equal(t, []byte{0, 0, 0, 0}, out.Bytes(), "failed patch must not write")
	})

	t.Run("width mismatch", func(t *testing.T) {
		b := NewBuffer()
		defer b.Release()

		ph, err := Reserve(b, 4)
		require.NoError(t, err)
		require.ErrorIs(t, PatchUint64(b, ph, engine, 1), errs.ErrInvalidOperation)
	})

	t.Run("placeholder ahead of position", func(t *testing.T) {
		b := NewBuffer()
		defer b.Release()

		ph, err := Reserve(b, 4)
		require.NoError(t, err)
		require.NoError(t, b.SeekTo(2))
		require.ErrorIs(t, PatchUint32(b, ph, engine, 1), errs.ErrInvalidOperation)
	})

	t.Run("reserve width out of range", func(t *testing.T) {
		_, err := Reserve(NewStream(io.Discard), 65)
		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})
}

func TestPatchFloat64s(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	b := NewBuffer()
	defer b.Release()

	ph, err := Reserve(b, 16)
	require.NoError(t, err)
	require.NoError(t, PatchFloat64s(b, ph, engine, 1.5, -2.25))

	want := engine.AppendUint64(nil, 0x3FF8000000000000)
	want = engine.AppendUint64(want, 0xC002000000000000)
	require.Equal(t, want, b.Bytes())
}

func TestFile_Patch(t *testing.T) {
	require := require.New(t)
	engine := endian.GetLittleEndianEngine()

	fh := tempFile(t)
	_, err := fh.Write([]byte("prefix"))
	require.NoError(err)

	f, err := NewFile(fh)
	require.NoError(err)
	require.Equal(int64(6), f.Position())

	ph, err := Reserve(f, 4)
	require.NoError(err)
	_, err = f.Write([]byte("tail"))
	require.NoError(err)

	require.NoError(PatchUint32(f, ph, engine, 42))
	require.Equal(int64(14), f.Position())
	require.ErrorIs(f.SeekTo(15), errs.ErrInvalidOperation)

	data, err := os.ReadFile(fh.Name())
	require.NoError(err)
	require.Equal([]byte("prefix\x2a\x00\x00\x00tail"), data)
}

func TestFile_SeekBeforeStart(t *testing.T) {
	require := require.New(t)

	fh := tempFile(t)
	_, err := fh.Write([]byte("prefix"))
	require.NoError(err)

	f, err := NewFile(fh)
	require.NoError(err)
	_, err = f.Write([]byte("body"))
	require.NoError(err)

	require.ErrorIs(f.SeekTo(0), errs.ErrInvalidOperation)
	require.ErrorIs(f.SeekTo(5), errs.ErrInvalidOperation)
	require.ErrorIs(Patch(f, Placeholder{Pos: 2, Width: 4}, []byte("XXXX")), errs.ErrInvalidOperation)
	require.Equal(int64(10), f.Position())

	require.NoError(f.SeekTo(6))
	require.NoError(f.SeekTo(10))

	data, err := os.ReadFile(fh.Name())
	require.NoError(err)
	require.Equal([]byte("prefixbody"), data)
}

func tempFile(t *testing.T) *os.File {
	t.Helper()

	fh, err := os.Create(filepath.Join(t.TempDir(), "sink.bin"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fh.Close() })

	return fh
}
