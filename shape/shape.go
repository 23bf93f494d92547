// seehuhn.de/go/fillet - tangent arcs between lines and circular arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package shape implements the planar geometry used by the fillet solver:
// line segments, circular arcs and full circles, together with measurement,
// transformation and intersection of these shapes.
//
// All angles are in degrees. Arcs run counter-clockwise from StartAngle to
// EndAngle.
package shape

import (
	"seehuhn.de/go/geom/vec"
)

// Shape is a line segment, a circular arc or a full circle.
// The set of implementations is closed: *Line, *Arc and *Circle.
type Shape interface {
	isShape()
}

// Path is a shape with two named endpoints: *Line or *Arc.
type Path interface {
	Shape

	// Point returns the coordinates of the given endpoint.
	Point(e Endpoint) vec.Vec2

	// Length returns the length of the path. Degenerate paths have length 0.
	Length() float64

	// ClonePath returns an independent copy of the path.
	ClonePath() Path
}

// Endpoint selects one of the two endpoints of a path.
type Endpoint int

const (
	// Start is the origin of a line, or the StartAngle end of an arc.
	Start Endpoint = iota

	// End is the end point of a line, or the EndAngle end of an arc.
	End
)

// Other returns the opposite endpoint.
func (e Endpoint) Other() Endpoint {
	if e == Start {
		return End
	}
	return Start
}

func (e Endpoint) String() string {
	if e == Start {
		return "start"
	}
	return "end"
}

// Line is a straight line segment from Origin to End.
type Line struct {
	Origin vec.Vec2
	End    vec.Vec2
}

func (*Line) isShape() {}

// NewLine returns the line segment from p0 to p1.
func NewLine(p0, p1 vec.Vec2) *Line {
	return &Line{Origin: p0, End: p1}
}

// Point implements the [Path] interface.
func (l *Line) Point(e Endpoint) vec.Vec2 {
	if e == Start {
		return l.Origin
	}
	return l.End
}

// SetPoint moves one endpoint of the line.
func (l *Line) SetPoint(e Endpoint, p vec.Vec2) {
	if e == Start {
		l.Origin = p
	} else {
		l.End = p
	}
}

// Length implements the [Path] interface.
func (l *Line) Length() float64 {
	return l.End.Sub(l.Origin).Length()
}

// ClonePath implements the [Path] interface.
func (l *Line) ClonePath() Path {
	c := *l
	return &c
}

// Arc is the part of the circle with the given Center and Radius which runs
// counter-clockwise from StartAngle to EndAngle (in degrees).
type Arc struct {
	Center     vec.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (*Arc) isShape() {}

// NewArc returns a new arc.
func NewArc(center vec.Vec2, radius, startDeg, endDeg float64) *Arc {
	return &Arc{Center: center, Radius: radius, StartAngle: startDeg, EndAngle: endDeg}
}

// Point implements the [Path] interface.
func (a *Arc) Point(e Endpoint) vec.Vec2 {
	return PointOnArc(a, a.Angle(e))
}

// Angle returns the angle of the given endpoint.
func (a *Arc) Angle(e Endpoint) float64 {
	if e == Start {
		return a.StartAngle
	}
	return a.EndAngle
}

// SetAngle replaces the angle of one endpoint of the arc.
func (a *Arc) SetAngle(e Endpoint, deg float64) {
	if e == Start {
		a.StartAngle = deg
	} else {
		a.EndAngle = deg
	}
}

// Span returns the angular extent of the arc, in the range [0, 360).
func (a *Arc) Span() float64 {
	return NoRevolutions(a.EndAngle - a.StartAngle)
}

// Length implements the [Path] interface.
func (a *Arc) Length() float64 {
	return ToRadians(a.Span()) * a.Radius
}

// ClonePath implements the [Path] interface.
func (a *Arc) ClonePath() Path {
	c := *a
	return &c
}

// Circle is a full circle. Circles are only used as intersection operands.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

func (*Circle) isShape() {}

// NewCircle returns a new circle.
func NewCircle(center vec.Vec2, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

// Clone returns an independent copy of s.
func Clone(s Shape) Shape {
	switch s := s.(type) {
	case *Line:
		c := *s
		return &c
	case *Arc:
		c := *s
		return &c
	case *Circle:
		c := *s
		return &c
	}
	return nil
}
