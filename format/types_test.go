package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCode_Components(t *testing.T) {
	tests := []struct {
		code TypeCode
		base BaseType
		dim  Dimension
	}{
		{1, TypePoint, DimXY},
		{1002, TypeLineString, DimXYZ},
		{2003, TypePolygon, DimXYM},
		{3006, TypeMultiPolygon, DimXYZM},
		{7, TypeGeometryCollection, DimXY},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			require.Equal(t, tt.base, tt.code.Base())
			require.Equal(t, tt.dim, tt.code.Dimension())
			require.True(t, tt.code.IsValidDimension())
			require.Equal(t, tt.code, NewTypeCode(tt.base, tt.dim))
		})
	}
}

func TestTypeCode_Invalid(t *testing.T) {
	require.False(t, TypeCode(4001).IsValidDimension())
	require.False(t, TypeCode(-1).IsValidDimension())
	require.True(t, TypeCode(1_000_002).IsCompressed())
	require.False(t, TypeCode(1_000_002).IsValidDimension())
	require.False(t, TypeCode(3003).IsCompressed())
	require.Equal(t, "Unknown(4001)", TypeCode(4001).String())
}

func TestTypeCode_String(t *testing.T) {
	require.Equal(t, "Point", TypeCode(1).String())
	require.Equal(t, "LineString Z", TypeCode(1002).String())
	require.Equal(t, "Polygon M", TypeCode(2003).String())
	require.Equal(t, "MultiPoint ZM", TypeCode(3004).String())
}

func TestDimension_Stride(t *testing.T) {
	require.Equal(t, 2, DimXY.Stride())
	require.Equal(t, 3, DimXYZ.Stride())
	require.Equal(t, 3, DimXYM.Stride())
	require.Equal(t, 4, DimXYZM.Stride())

	require.True(t, DimXYZ.HasZ())
	require.False(t, DimXYZ.HasM())
	require.True(t, DimXYM.HasM())
	require.True(t, DimXYZM.HasZ() && DimXYZM.HasM())
	require.False(t, Dimension(500).IsValid())
}

func TestBaseType_Element(t *testing.T) {
	elem, ok := TypeMultiPoint.Element()
	require.True(t, ok)
	require.Equal(t, TypePoint, elem)

	elem, ok = TypeMultiPolygon.Element()
	require.True(t, ok)
	require.Equal(t, TypePolygon, elem)

	_, ok = TypePolygon.Element()
	require.False(t, ok)
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0x9).String())
}
