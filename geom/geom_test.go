package geom

import (
	"testing"

	"github.com/arloliu/geoblob/format"
	"github.com/stretchr/testify/require"
)

func TestPointConstructors(t *testing.T) {
	require := require.New(t)

	p := NewPoint(30, 10)
	require.Equal(format.TypeCode(1), p.TypeCode())
	require.Equal(Coord{X: 30, Y: 10}, p.Coord)

	pz := NewPointZ(1, 2, 3)
	require.Equal(format.TypeCode(1001), pz.TypeCode())
	require.Equal(3.0, pz.Z)

	pm := NewPointM(1, 2, 4)
	require.Equal(format.TypeCode(2001), pm.TypeCode())
	require.Equal(4.0, pm.M)
	require.Zero(pm.Z)

	pzm := NewPointZM(1, 2, 3, 4)
	require.Equal(format.TypeCode(3001), pzm.TypeCode())
}

func TestMultiTypeCode(t *testing.T) {
	t.Run("empty uses own dimension", func(t *testing.T) {
		require.Equal(t, format.TypeCode(1004), MultiPoint{Dim: format.DimXYZ}.TypeCode())
		require.Equal(t, format.TypeCode(5), MultiLineString{}.TypeCode())
		require.Equal(t, format.TypeCode(3006), MultiPolygon{Dim: format.DimXYZM}.TypeCode())
	})

	t.Run("first element wins", func(t *testing.T) {
		mp := MultiPoint{Dim: format.DimXY, Points: []Point{NewPointM(1, 2, 3)}}
		require.Equal(t, format.TypeCode(2004), mp.TypeCode())

		ml := MultiLineString{LineStrings: []LineString{NewLineString(format.DimXYZ)}}
		require.Equal(t, format.TypeCode(1005), ml.TypeCode())
	})
}

func TestPolygonRings(t *testing.T) {
	exterior := LinearRing{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}
	hole := LinearRing{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 2}}

	p := NewPolygon(format.DimXY, exterior, hole)
	require.Equal(t, exterior, p.Exterior())
	require.Equal(t, []LinearRing{hole}, p.Holes())

	empty := NewPolygon(format.DimXY)
	require.Nil(t, empty.Exterior())
	require.Nil(t, empty.Holes())
}
