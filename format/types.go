package format

import "fmt"

type (
	// BaseType is the shape component of a geometry type code (code mod 1000).
	BaseType int32
	// Dimension is the dimensionality component of a geometry type code.
	Dimension int32
	// TypeCode is the signed 32-bit geometry type code stored in a blob.
	TypeCode int32

	CompressionType uint8
)

const (
	TypeGeneric            BaseType = 0 // TypeGeneric is the untyped geometry, never valid in a blob.
	TypePoint              BaseType = 1
	TypeLineString         BaseType = 2
	TypePolygon            BaseType = 3
	TypeMultiPoint         BaseType = 4
	TypeMultiLineString    BaseType = 5
	TypeMultiPolygon       BaseType = 6
	TypeGeometryCollection BaseType = 7

	DimXY   Dimension = 0    // DimXY is a plain 2D coordinate.
	DimXYZ  Dimension = 1000 // DimXYZ carries an elevation.
	DimXYM  Dimension = 2000 // DimXYM carries a measure.
	DimXYZM Dimension = 3000 // DimXYZM carries both.

	// CompressedThreshold is the first type code of the compressed coordinate
	// variants (delta-encoded lines and polygons), which are not supported.
	CompressedThreshold TypeCode = 1_000_000

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// NewTypeCode combines a base type and a dimension into a type code.
func NewTypeCode(base BaseType, dim Dimension) TypeCode {
	return TypeCode(int32(base) + int32(dim))
}

// Base returns the shape component of the type code.
func (t TypeCode) Base() BaseType {
	return BaseType(t % 1000)
}

// Dimension returns the dimensionality component of the type code.
// The result is only meaningful when IsValidDimension reports true.
func (t TypeCode) Dimension() Dimension {
	return Dimension(t - TypeCode(t.Base()))
}

// IsCompressed reports whether the code names a compressed coordinate variant.
func (t TypeCode) IsCompressed() bool {
	return t >= CompressedThreshold
}

// IsValidDimension reports whether the dimension component is one of XY, XYZ, XYM or XYZM.
func (t TypeCode) IsValidDimension() bool {
	if t < 0 || t.IsCompressed() {
		return false
	}

	return t.Dimension().IsValid()
}

func (t TypeCode) String() string {
	if t < 0 || t.IsCompressed() || !t.Dimension().IsValid() {
		return fmt.Sprintf("Unknown(%d)", int32(t))
	}

	return t.Base().String() + t.Dimension().Suffix()
}

// IsValid reports whether d is one of the four supported dimensions.
func (d Dimension) IsValid() bool {
	switch d {
	case DimXY, DimXYZ, DimXYM, DimXYZM:
		return true
	default:
		return false
	}
}

// HasZ reports whether coordinates of this dimension carry a Z component.
func (d Dimension) HasZ() bool {
	return d == DimXYZ || d == DimXYZM
}

// HasM reports whether coordinates of this dimension carry an M component.
func (d Dimension) HasM() bool {
	return d == DimXYM || d == DimXYZM
}

// Stride returns the number of float64 components per coordinate tuple.
func (d Dimension) Stride() int {
	switch d {
	case DimXYZ, DimXYM:
		return 3
	case DimXYZM:
		return 4
	default:
		return 2
	}
}

// Suffix returns the conventional WKT suffix for the dimension ("", " Z", " M", " ZM").
func (d Dimension) Suffix() string {
	switch d {
	case DimXYZ:
		return " Z"
	case DimXYM:
		return " M"
	case DimXYZM:
		return " ZM"
	default:
		return ""
	}
}

func (d Dimension) String() string {
	switch d {
	case DimXY:
		return "XY"
	case DimXYZ:
		return "XYZ"
	case DimXYM:
		return "XYM"
	case DimXYZM:
		return "XYZM"
	default:
		return "Unknown"
	}
}

// Element returns the base type of the elements of a multi-geometry base type.
// The second result is false when b is not a multi-geometry.
func (b BaseType) Element() (BaseType, bool) {
	switch b { //nolint: exhaustive
	case TypeMultiPoint:
		return TypePoint, true
	case TypeMultiLineString:
		return TypeLineString, true
	case TypeMultiPolygon:
		return TypePolygon, true
	default:
		return TypeGeneric, false
	}
}

func (b BaseType) String() string {
	switch b {
	case TypeGeneric:
		return "Geometry"
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
