// Package section defines the low-level binary structures and constants of
// the geoblob formats.
//
// # Geometry Blob
//
// Every geometry blob starts with a fixed preamble and ends with a single end
// marker:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Start marker (1 byte) = 0x00                             │
//	│ Endianness (1 byte): 1 = little-endian, 0 = big-endian   │
//	│ SRID (int32)                                             │
//	│ Envelope (4 × float64): minX, minY, maxX, maxY           │
//	│ MBR marker (1 byte) = 0x7C                               │
//	├──────────────────────────────────────────────────────────┤
//	│ Type code (int32) = base + dimension                     │
//	│ Type-specific payload                                    │
//	├──────────────────────────────────────────────────────────┤
//	│ End marker (1 byte) = 0xFE                               │
//	└──────────────────────────────────────────────────────────┘
//
// Multi geometries prefix each element with an entity marker (0x69) and the
// element's own type code. The envelope is written as zeros for geometries
// that contain no coordinates.
//
// # Geometry Set
//
// A geometry set bundles many blobs for random access by feature ID:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ SetHeader (32 bytes, fixed)                              │
//	├──────────────────────────────────────────────────────────┤
//	│ Index (N × 16 bytes): feature ID, offset, length         │
//	├──────────────────────────────────────────────────────────┤
//	│ Feature names payload (optional)                         │
//	├──────────────────────────────────────────────────────────┤
//	│ Blob payload (optionally compressed)                     │
//	└──────────────────────────────────────────────────────────┘
//
// SetHeader layout:
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------
//	0-1    | Options        | uint16 | Endianness, names, magic (always LE)
//	2      | Compression    | uint8  | 0x1=None, 0x2=Zstd, 0x3=S2, 0x4=LZ4
//	3      | Reserved       | uint8  | Must be 0
//	4-7    | FeatureCount   | uint32 | Number of geometries
//	8-11   | IndexOffset    | uint32 | Byte offset to the index
//	12-15  | NamesOffset    | uint32 | Byte offset to names, 0 if absent
//	16-19  | PayloadOffset  | uint32 | Byte offset to the blob payload
//	20-23  | PayloadSize    | uint32 | Uncompressed payload size
//	24-31  | Checksum       | uint64 | xxHash64 of the stored payload
package section
