package geom

import "math"

// Envelope is the minimum bounding rectangle of a geometry.
//
// An Envelope accumulates coordinates as they are observed. The zero value is
// not empty (it is the degenerate box at the origin); use EmptyEnvelope to
// start accumulating.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyEnvelope returns the envelope sentinel that contains no coordinate.
func EmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether no coordinate has been observed yet.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// ExtendXY grows the envelope to contain (x, y).
func (e *Envelope) ExtendXY(x, y float64) {
	if x < e.MinX {
		e.MinX = x
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if y > e.MaxY {
		e.MaxY = y
	}
}

// Extend grows the envelope to contain c. Z and M are ignored.
func (e *Envelope) Extend(c Coord) {
	e.ExtendXY(c.X, c.Y)
}

// Merge grows the envelope to contain other. Empty envelopes are ignored.
func (e *Envelope) Merge(other Envelope) {
	if other.IsEmpty() {
		return
	}

	e.ExtendXY(other.MinX, other.MinY)
	e.ExtendXY(other.MaxX, other.MaxY)
}

// Contains reports whether (x, y) lies inside or on the boundary of the envelope.
func (e Envelope) Contains(x, y float64) bool {
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

// Intersects reports whether the two envelopes share at least one point.
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}

	return e.MinX <= other.MaxX && other.MinX <= e.MaxX &&
		e.MinY <= other.MaxY && other.MinY <= e.MaxY
}

// EnvelopeOf returns the envelope of every coordinate of g.
// The result is empty when g has no coordinates.
func EnvelopeOf(g Geometry) Envelope {
	env := EmptyEnvelope()

	switch v := g.(type) {
	case Point:
		env.Extend(v.Coord)
	case LineString:
		extendCoords(&env, v.Coords)
	case Polygon:
		extendRings(&env, v.Rings)
	case MultiPoint:
		for _, p := range v.Points {
			env.Extend(p.Coord)
		}
	case MultiLineString:
		for _, l := range v.LineStrings {
			extendCoords(&env, l.Coords)
		}
	case MultiPolygon:
		for _, p := range v.Polygons {
			extendRings(&env, p.Rings)
		}
	}

	return env
}

func extendCoords(env *Envelope, coords []Coord) {
	for _, c := range coords {
		env.Extend(c)
	}
}

func extendRings(env *Envelope, rings []LinearRing) {
	for _, r := range rings {
		extendCoords(env, r)
	}
}
