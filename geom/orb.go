package geom

import (
	"fmt"

	"github.com/arloliu/geoblob/errs"
	"github.com/arloliu/geoblob/format"
	"github.com/paulmach/orb"
)

// Bound converts the envelope to an orb.Bound.
// An empty envelope maps to the zero bound.
func (e Envelope) Bound() orb.Bound {
	if e.IsEmpty() {
		return orb.Bound{}
	}

	return orb.Bound{
		Min: orb.Point{e.MinX, e.MinY},
		Max: orb.Point{e.MaxX, e.MaxY},
	}
}

// EnvelopeFromBound converts an orb.Bound to an envelope.
func EnvelopeFromBound(b orb.Bound) Envelope {
	return Envelope{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}
}

// ToOrb projects g onto the 2D orb geometry model. Z and M are dropped.
func ToOrb(g Geometry) (orb.Geometry, error) {
	switch v := g.(type) {
	case Point:
		return orb.Point{v.X, v.Y}, nil
	case LineString:
		return orb.LineString(toOrbPoints(v.Coords)), nil
	case Polygon:
		return toOrbPolygon(v), nil
	case MultiPoint:
		mp := make(orb.MultiPoint, len(v.Points))
		for i, p := range v.Points {
			mp[i] = orb.Point{p.X, p.Y}
		}

		return mp, nil
	case MultiLineString:
		ml := make(orb.MultiLineString, len(v.LineStrings))
		for i, l := range v.LineStrings {
			ml[i] = orb.LineString(toOrbPoints(l.Coords))
		}

		return ml, nil
	case MultiPolygon:
		mp := make(orb.MultiPolygon, len(v.Polygons))
		for i, p := range v.Polygons {
			mp[i] = toOrbPolygon(p)
		}

		return mp, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to orb", errs.ErrInvalidGeometryType, g)
	}
}

// FromOrb converts an orb geometry to an XY geometry.
// Collections and bounds have no counterpart and are rejected.
func FromOrb(g orb.Geometry) (Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return NewPoint(v[0], v[1]), nil
	case orb.MultiPoint:
		mp := MultiPoint{Dim: format.DimXY, Points: make([]Point, len(v))}
		for i, p := range v {
			mp.Points[i] = NewPoint(p[0], p[1])
		}

		return mp, nil
	case orb.LineString:
		return LineString{Dim: format.DimXY, Coords: fromOrbPoints(v)}, nil
	case orb.Ring:
		return LineString{Dim: format.DimXY, Coords: fromOrbPoints(v)}, nil
	case orb.MultiLineString:
		ml := MultiLineString{Dim: format.DimXY, LineStrings: make([]LineString, len(v))}
		for i, l := range v {
			ml.LineStrings[i] = LineString{Dim: format.DimXY, Coords: fromOrbPoints(l)}
		}

		return ml, nil
	case orb.Polygon:
		return fromOrbPolygon(v), nil
	case orb.MultiPolygon:
		mp := MultiPolygon{Dim: format.DimXY, Polygons: make([]Polygon, len(v))}
		for i, p := range v {
			mp.Polygons[i] = fromOrbPolygon(p)
		}

		return mp, nil
	default:
		return nil, fmt.Errorf("%w: unsupported orb geometry %T", errs.ErrInvalidGeometryType, g)
	}
}

func toOrbPoints(coords []Coord) []orb.Point {
	pts := make([]orb.Point, len(coords))
	for i, c := range coords {
		pts[i] = orb.Point{c.X, c.Y}
	}

	return pts
}

func fromOrbPoints(pts []orb.Point) []Coord {
	coords := make([]Coord, len(pts))
	for i, p := range pts {
		coords[i] = Coord{X: p[0], Y: p[1]}
	}

	return coords
}

func toOrbPolygon(p Polygon) orb.Polygon {
	poly := make(orb.Polygon, len(p.Rings))
	for i, r := range p.Rings {
		poly[i] = orb.Ring(toOrbPoints(r))
	}

	return poly
}

func fromOrbPolygon(p orb.Polygon) Polygon {
	poly := Polygon{Dim: format.DimXY, Rings: make([]LinearRing, len(p))}
	for i, r := range p {
		poly.Rings[i] = LinearRing(fromOrbPoints(r))
	}

	return poly
}
