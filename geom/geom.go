// Package geom defines the plain vector geometry values read and written by
// the blob codec.
//
// The values are immutable data: the codec only reads their coordinate
// components and iterates their parts. No topological rules (ring closure,
// winding, self-intersection) are enforced.
//
// Every geometry carries its coordinate dimension (XY, XYZ, XYM or XYZM) as a
// format.Dimension. Components that the dimension does not declare are
// ignored when encoding and left at zero when decoding.
package geom

import "github.com/arloliu/geoblob/format"

// Geometry is implemented by every value type of this package.
type Geometry interface {
	// TypeCode returns the blob type code for this geometry, including its dimension.
	TypeCode() format.TypeCode
}

// Coord is a single coordinate tuple.
type Coord struct {
	X, Y, Z, M float64
}

// Point is a single position.
type Point struct {
	Dim format.Dimension
	Coord
}

// LineString is an ordered sequence of positions.
type LineString struct {
	Dim    format.Dimension
	Coords []Coord
}

// LinearRing is a ring of a polygon. Closure is not validated.
type LinearRing []Coord

// Polygon is an exterior ring followed by zero or more holes.
type Polygon struct {
	Dim   format.Dimension
	Rings []LinearRing
}

// MultiPoint is a homogeneous collection of points.
//
// Dim is only consulted when the collection is empty; otherwise the
// dimension of the first point wins.
type MultiPoint struct {
	Dim    format.Dimension
	Points []Point
}

// MultiLineString is a homogeneous collection of line strings.
type MultiLineString struct {
	Dim         format.Dimension
	LineStrings []LineString
}

// MultiPolygon is a homogeneous collection of polygons.
type MultiPolygon struct {
	Dim      format.Dimension
	Polygons []Polygon
}

var (
	_ Geometry = Point{}
	_ Geometry = LineString{}
	_ Geometry = Polygon{}
	_ Geometry = MultiPoint{}
	_ Geometry = MultiLineString{}
	_ Geometry = MultiPolygon{}
)

// NewPoint creates a 2D point.
func NewPoint(x, y float64) Point {
	return Point{Dim: format.DimXY, Coord: Coord{X: x, Y: y}}
}

// NewPointZ creates a point with elevation.
func NewPointZ(x, y, z float64) Point {
	return Point{Dim: format.DimXYZ, Coord: Coord{X: x, Y: y, Z: z}}
}

// NewPointM creates a point with a measure.
func NewPointM(x, y, m float64) Point {
	return Point{Dim: format.DimXYM, Coord: Coord{X: x, Y: y, M: m}}
}

// NewPointZM creates a point with elevation and measure.
func NewPointZM(x, y, z, m float64) Point {
	return Point{Dim: format.DimXYZM, Coord: Coord{X: x, Y: y, Z: z, M: m}}
}

// NewLineString creates a line string of the given dimension.
func NewLineString(dim format.Dimension, coords ...Coord) LineString {
	return LineString{Dim: dim, Coords: coords}
}

// NewPolygon creates a polygon of the given dimension. The first ring is the
// exterior boundary.
func NewPolygon(dim format.Dimension, rings ...LinearRing) Polygon {
	return Polygon{Dim: dim, Rings: rings}
}

func (p Point) TypeCode() format.TypeCode {
	return format.NewTypeCode(format.TypePoint, p.Dim)
}

func (l LineString) TypeCode() format.TypeCode {
	return format.NewTypeCode(format.TypeLineString, l.Dim)
}

func (p Polygon) TypeCode() format.TypeCode {
	return format.NewTypeCode(format.TypePolygon, p.Dim)
}

func (m MultiPoint) TypeCode() format.TypeCode {
	dim := m.Dim
	if len(m.Points) > 0 {
		dim = m.Points[0].Dim
	}

	return format.NewTypeCode(format.TypeMultiPoint, dim)
}

func (m MultiLineString) TypeCode() format.TypeCode {
	dim := m.Dim
	if len(m.LineStrings) > 0 {
		dim = m.LineStrings[0].Dim
	}

	return format.NewTypeCode(format.TypeMultiLineString, dim)
}

func (m MultiPolygon) TypeCode() format.TypeCode {
	dim := m.Dim
	if len(m.Polygons) > 0 {
		dim = m.Polygons[0].Dim
	}

	return format.NewTypeCode(format.TypeMultiPolygon, dim)
}

// Len returns the number of points in the line string.
func (l LineString) Len() int {
	return len(l.Coords)
}

// Exterior returns the exterior ring, or nil for an empty polygon.
func (p Polygon) Exterior() LinearRing {
	if len(p.Rings) == 0 {
		return nil
	}

	return p.Rings[0]
}

// Holes returns the interior rings.
func (p Polygon) Holes() []LinearRing {
	if len(p.Rings) < 2 {
		return nil
	}

	return p.Rings[1:]
}

// Len returns the number of points.
func (m MultiPoint) Len() int { return len(m.Points) }

// Len returns the number of line strings.
func (m MultiLineString) Len() int { return len(m.LineStrings) }

// Len returns the number of polygons.
func (m MultiPolygon) Len() int { return len(m.Polygons) }
