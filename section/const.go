package section

// Geometry blob markers.
const (
	StartMarker  byte = 0x00 // first byte of every blob
	MBRMarker    byte = 0x7C // closes the envelope
	EntityMarker byte = 0x69 // precedes each element of a multi-geometry
	EndMarker    byte = 0xFE // last byte of every blob
)

// Geometry blob header layout.
const (
	StartMarkerOffset = 0
	EndiannessOffset  = 1
	SRIDOffset        = 2
	EnvelopeOffset    = 6
	MBRMarkerOffset   = 38
	TypeCodeOffset    = 39

	EnvelopeSize = 32                  // minX, minY, maxX, maxY as float64
	HeaderSize   = MBRMarkerOffset + 1 // 39 bytes up to and including the MBR marker
	PreambleSize = TypeCodeOffset + 4  // 43 bytes including the geometry type code
	MinBlobSize  = PreambleSize + 2    // smallest buffer accepted by the header decoder
	CountSize    = 4                   // element count of lines, polygons and multi-geometries
	EntityPrefix = 1 + 4               // entity marker + element type code
	CoordSize    = 8                   // one coordinate component
	EndSize      = 1                   // end marker
	MaxEntities  = 1<<31 - 1           // largest count representable in a blob
)

// Geometry set option bits.
const (
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0), 0 = little, 1 = big
	FeatureNamesMask = 0x0002 // Mask for feature names payload bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicGeometrySetV1Opt = 0xC510 // MagicGeometrySetV1Opt is the version 1 magic number of geometry sets.
)

// Geometry set layout.
const (
	SetHeaderSize      = 32            // fixed geometry set header size in bytes
	SetIndexEntrySize  = 16            // fixed index entry size in bytes
	SetIndexOffset     = SetHeaderSize // byte offset where the index starts
	SetMaxFeatureCount = 1<<32 - 1     // feature count is stored as uint32
)
