package section

import (
	"testing"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/window"
	"github.com/arloliu/geoblob/sink"
	"github.com/stretchr/testify/require"
)

// headerBlob writes a header, a type code and a two-byte tail so the result
// passes the minimum length check.
func headerBlob(t *testing.T, engine endian.EndianEngine, srid int32, env geom.Envelope, code format.TypeCode) []byte {
	t.Helper()

	buf := sink.NewBuffer()
	t.Cleanup(buf.Release)

	ph, err := WriteHeader(buf, srid, engine)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize), buf.Position())

	_, err = buf.Write(engine.AppendUint32(nil, uint32(code)))
	require.NoError(t, err)
	_, err = buf.Write([]byte{0, EndMarker})
	require.NoError(t, err)

	require.NoError(t, PatchEnvelope(buf, ph, env, engine))

	return append([]byte(nil), buf.Bytes()...)
}

func TestHeader_RoundTrip(t *testing.T) {
	env := geom.Envelope{MinX: -1.5, MinY: 2, MaxX: 10, MaxY: 20.25}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		t.Run(engine.String(), func(t *testing.T) {
			require := require.New(t)

			data := headerBlob(t, engine, 4326, env, format.NewTypeCode(format.TypeLineString, format.DimXYZ))
			require.Len(data, MinBlobSize)
			require.Equal(StartMarker, data[StartMarkerOffset])
			require.Equal(endian.Flag(engine), data[EndiannessOffset])
			require.Equal(MBRMarker, data[MBRMarkerOffset])

			h, err := ParseHeader(data)
			require.NoError(err)
			require.Equal(int32(4326), h.SRID)
			require.Equal(endian.IsLittleEndian(engine), h.LittleEndian)
			require.Equal(env, h.Envelope)
			require.Equal(format.TypeCode(1002), h.TypeCode)
		})
	}
}

func TestDecodeHeader_ConsumesPreamble(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := headerBlob(t, engine, 0, geom.Envelope{}, format.TypeCode(1))

	w := window.New(data)
	_, err := DecodeHeader(&w)
	require.NoError(t, err)
	require.Equal(t, data[PreambleSize:], w.Bytes())
	require.Equal(t, 2, w.Len())
}

func TestDecodeHeader_Invalid(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	valid := headerBlob(t, engine, 0, geom.Envelope{}, format.TypeCode(1))

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{"too short", func(b []byte) []byte { return b[:MinBlobSize-1] }},
		{"empty", func(b []byte) []byte { return nil }},
		{"bad start marker", func(b []byte) []byte { b[StartMarkerOffset] = 0x01; return b }},
		{"bad MBR marker", func(b []byte) []byte { b[MBRMarkerOffset] = 0x00; return b }},
		{"bad endianness", func(b []byte) []byte { b[EndiannessOffset] = 0x02; return b }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), valid...))
			_, err := ParseHeader(data)
			require.ErrorIs(t, err, errs.ErrInvalidData)
		})
	}
}

func TestWriteHeaderWithEnvelope(t *testing.T) {
	require := require.New(t)
	engine := endian.GetBigEndianEngine()
	env := geom.Envelope{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}

	patched := headerBlob(t, engine, 7, env, format.TypeCode(1))

	buf := sink.NewBuffer()
	defer buf.Release()
	require.NoError(WriteHeaderWithEnvelope(buf, 7, env, engine))
	require.Equal(patched[:HeaderSize], buf.Bytes())
}

func TestAppendEnvelope_Empty(t *testing.T) {
	b := AppendEnvelope(nil, geom.EmptyEnvelope(), endian.GetLittleEndianEngine())
	require.Equal(t, make([]byte, EnvelopeSize), b)
}
