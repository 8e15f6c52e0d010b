package geom

import (
	"math"
	"testing"

	"github.com/arloliu/geoblob/format"
	"github.com/stretchr/testify/require"
)

func TestEmptyEnvelope(t *testing.T) {
	env := EmptyEnvelope()
	require.True(t, env.IsEmpty())
	require.True(t, math.IsInf(env.MinX, 1))
	require.True(t, math.IsInf(env.MaxY, -1))

	env.ExtendXY(3, -4)
	require.False(t, env.IsEmpty())
	require.Equal(t, Envelope{MinX: 3, MinY: -4, MaxX: 3, MaxY: -4}, env)
}

func TestEnvelope_Extend(t *testing.T) {
	env := EmptyEnvelope()
	for _, c := range []Coord{{X: 102, Y: 0}, {X: 103, Y: 1}, {X: 104, Y: 0}, {X: 105, Y: 1}} {
		env.Extend(c)
	}

	require.Equal(t, Envelope{MinX: 102, MinY: 0, MaxX: 105, MaxY: 1}, env)
	require.True(t, env.Contains(104, 0.5))
	require.False(t, env.Contains(101, 0.5))
}

func TestEnvelope_Merge(t *testing.T) {
	env := EmptyEnvelope()
	env.Merge(EmptyEnvelope())
	require.True(t, env.IsEmpty())

	env.Merge(Envelope{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	env.Merge(Envelope{MinX: -5, MinY: 2, MaxX: -4, MaxY: 3})
	require.Equal(t, Envelope{MinX: -5, MinY: 0, MaxX: 1, MaxY: 3}, env)
}

func TestEnvelope_Intersects(t *testing.T) {
	a := Envelope{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Envelope{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	c := Envelope{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}

	require.True(t, a.Intersects(b))
	require.False(t, a.Intersects(c))
	require.False(t, a.Intersects(EmptyEnvelope()))
}

func TestEnvelopeOf(t *testing.T) {
	tests := []struct {
		name     string
		geometry Geometry
		want     Envelope
		empty    bool
	}{
		{"point", NewPoint(30, 10), Envelope{MinX: 30, MinY: 10, MaxX: 30, MaxY: 10}, false},
		{
			"line",
			NewLineString(format.DimXYZ, Coord{X: 1, Y: 5, Z: 100}, Coord{X: -1, Y: 7, Z: -100}),
			Envelope{MinX: -1, MinY: 5, MaxX: 1, MaxY: 7},
			false,
		},
		{
			"polygon with hole",
			NewPolygon(format.DimXY,
				LinearRing{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}},
				LinearRing{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}},
			),
			Envelope{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
			false,
		},
		{
			"multipolygon",
			MultiPolygon{Polygons: []Polygon{
				NewPolygon(format.DimXY, LinearRing{{X: 0, Y: 0}, {X: 1, Y: 1}}),
				NewPolygon(format.DimXY, LinearRing{{X: 8, Y: -3}, {X: 9, Y: 1}}),
			}},
			Envelope{MinX: 0, MinY: -3, MaxX: 9, MaxY: 1},
			false,
		},
		{"empty multipoint", MultiPoint{}, EmptyEnvelope(), true},
		{"empty line", NewLineString(format.DimXY), EmptyEnvelope(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvelopeOf(tt.geometry)
			require.Equal(t, tt.empty, got.IsEmpty())
			require.Equal(t, tt.want, got)
		})
	}
}
