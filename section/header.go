package section

import (
	"fmt"
	"math"

	"github.com/arloliu/geoblob/endian"
	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/arloliu/geoblob/geom"
	"github.com/arloliu/geoblob/internal/window"
	"github.com/arloliu/geoblob/sink"
)

// Header is the self-describing preamble of one geometry blob.
//
// Layout (byte order of every multi-byte field is given by byte 1):
//
//	offset  size  field
//	0       1     start marker = 0x00
//	1       1     endianness (1 = little, 0 = big)
//	2       4     SRID (int32)
//	6       32    envelope: minX, minY, maxX, maxY (float64 × 4)
//	38      1     MBR marker = 0x7C
//	39      4     geometry type code (int32)
type Header struct {
	// SRID is the spatial reference identifier of the geometry.
	SRID int32
	// LittleEndian is the byte order flag of the blob.
	LittleEndian bool
	// Envelope is the bounding box as stored. It is the zero envelope for
	// blobs of geometries without coordinates.
	Envelope geom.Envelope
	// TypeCode is the declared geometry type of the blob body.
	TypeCode format.TypeCode
}

// Engine returns the byte order engine of the blob.
func (h Header) Engine() endian.EndianEngine {
	if h.LittleEndian {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// ParseHeader decodes the header of a complete blob.
func ParseHeader(data []byte) (Header, error) {
	w := window.New(data)
	return DecodeHeader(&w)
}

// DecodeHeader decodes the header at the front of w and consumes the 43
// preamble bytes, leaving w positioned at the type-specific payload.
//
// Returns ErrInvalidData when w holds fewer than MinBlobSize bytes, when the
// start or MBR marker is wrong, or when the endianness flag is unknown.
func DecodeHeader(w *window.Window) (Header, error) {
	if w.Len() < MinBlobSize {
		return Header{}, fmt.Errorf("%w: blob of %d bytes is shorter than the %d-byte minimum",
			errs.ErrInvalidData, w.Len(), MinBlobSize)
	}

	// Length checked above, the indexed reads below cannot fail.
	data := w.Bytes()
	if data[StartMarkerOffset] != StartMarker {
		return Header{}, fmt.Errorf("%w: start marker is 0x%02x, want 0x%02x",
			errs.ErrInvalidData, data[StartMarkerOffset], StartMarker)
	}
	if data[MBRMarkerOffset] != MBRMarker {
		return Header{}, fmt.Errorf("%w: MBR marker is 0x%02x, want 0x%02x",
			errs.ErrInvalidData, data[MBRMarkerOffset], MBRMarker)
	}

	engine, ok := endian.FromFlag(data[EndiannessOffset])
	if !ok {
		return Header{}, fmt.Errorf("%w: unknown endianness flag 0x%02x", errs.ErrInvalidData, data[EndiannessOffset])
	}

	if err := w.Skip(SRIDOffset); err != nil {
		return Header{}, err
	}

	h := Header{LittleEndian: endian.IsLittleEndian(engine)}

	var err error
	if h.SRID, err = w.ReadInt32(engine); err != nil {
		return Header{}, err
	}
	if h.Envelope, err = readEnvelope(w, engine); err != nil {
		return Header{}, err
	}
	if err = w.Skip(1); err != nil { // MBR marker, verified above
		return Header{}, err
	}

	code, err := w.ReadInt32(engine)
	if err != nil {
		return Header{}, err
	}
	h.TypeCode = format.TypeCode(code)

	return h, nil
}

func readEnvelope(w *window.Window, engine endian.EndianEngine) (geom.Envelope, error) {
	var vals [4]float64
	for i := range vals {
		v, err := w.ReadFloat64(engine)
		if err != nil {
			return geom.Envelope{}, err
		}
		vals[i] = v
	}

	return geom.Envelope{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}, nil
}

// WriteHeader writes the 39-byte blob header with a zero-filled envelope and
// returns the envelope placeholder for PatchEnvelope.
func WriteHeader(s sink.Sink, srid int32, engine endian.EndianEngine) (sink.Placeholder, error) {
	b := make([]byte, 0, EnvelopeOffset)
	b = append(b, StartMarker, endian.Flag(engine))
	b = engine.AppendUint32(b, uint32(srid)) //nolint: gosec

	if _, err := s.Write(b); err != nil {
		return sink.Placeholder{}, err
	}

	ph, err := sink.Reserve(s, EnvelopeSize)
	if err != nil {
		return sink.Placeholder{}, err
	}

	if _, err := s.Write([]byte{MBRMarker}); err != nil {
		return sink.Placeholder{}, err
	}

	return ph, nil
}

// WriteHeaderWithEnvelope writes the blob header with a known envelope in
// place, for sinks that cannot be patched. An empty envelope is written as
// zeros, the same bytes WriteHeader reserves.
func WriteHeaderWithEnvelope(s sink.Sink, srid int32, env geom.Envelope, engine endian.EndianEngine) error {
	b := make([]byte, 0, HeaderSize)
	b = append(b, StartMarker, endian.Flag(engine))
	b = engine.AppendUint32(b, uint32(srid)) //nolint: gosec
	b = AppendEnvelope(b, env, engine)
	b = append(b, MBRMarker)

	_, err := s.Write(b)

	return err
}

// PatchEnvelope fills the envelope placeholder reserved by WriteHeader.
func PatchEnvelope(s sink.Sink, ph sink.Placeholder, env geom.Envelope, engine endian.EndianEngine) error {
	return sink.PatchFloat64s(s, ph, engine, env.MinX, env.MinY, env.MaxX, env.MaxY)
}

// AppendEnvelope appends the 32-byte envelope encoding to b.
// An empty envelope is encoded as zeros.
func AppendEnvelope(b []byte, env geom.Envelope, engine endian.EndianEngine) []byte {
	if env.IsEmpty() {
		return append(b, make([]byte, EnvelopeSize)...)
	}

	for _, v := range [4]float64{env.MinX, env.MinY, env.MaxX, env.MaxY} {
		b = engine.AppendUint64(b, math.Float64bits(v))
	}

	return b
}
