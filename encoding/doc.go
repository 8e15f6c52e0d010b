// Package encoding provides the body codecs of the geometry blob format.
//
// A blob body is the type code followed by a type-specific payload:
//
//	point        coordinate tuple
//	line         uint32 point count, tuples
//	polygon      uint32 ring count, rings encoded as lines
//	multi        uint32 element count, then per element:
//	             entity marker 0x69, int32 element type code, element payload
//
// A coordinate tuple holds 2, 3 or 4 float64 components depending on the
// dimension component of the type code (XY, XYZ or XYM, XYZM). Every
// multi-byte value uses the byte order declared by the blob header.
//
// Encoder writes bodies to a sink.Sink and reports every coordinate to an
// optional geom.Envelope. Decoder reads bodies from an internal window and
// never retains the buffer.
//
// Most users should use the blob package instead, which adds the header,
// the envelope patch and the end marker.
package encoding
