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

package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// rotation returns the matrix which rotates counter-clockwise by deg degrees
// around pivot.
func rotation(deg float64, pivot vec.Vec2) matrix.Matrix {
	rad := ToRadians(deg)
	c, s := math.Cos(rad), math.Sin(rad)
	return matrix.Matrix{
		c, s,
		-s, c,
		pivot.X - c*pivot.X + s*pivot.Y,
		pivot.Y - s*pivot.X - c*pivot.Y,
	}
}

// translation returns the matrix which shifts by delta.
func translation(delta vec.Vec2) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, delta.X, delta.Y}
}

// apply transforms a point by m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Rotate rotates s in place, counter-clockwise by deg degrees around pivot.
func Rotate(s Shape, deg float64, pivot vec.Vec2) {
	m := rotation(deg, pivot)
	switch s := s.(type) {
	case *Line:
		s.Origin = apply(m, s.Origin)
		s.End = apply(m, s.End)
	case *Arc:
		s.Center = apply(m, s.Center)
		s.StartAngle += deg
		s.EndAngle += deg
	case *Circle:
		s.Center = apply(m, s.Center)
	}
}

// Translate moves s in place by delta.
func Translate(s Shape, delta vec.Vec2) {
	m := translation(delta)
	switch s := s.(type) {
	case *Line:
		s.Origin = apply(m, s.Origin)
		s.End = apply(m, s.End)
	case *Arc:
		s.Center = apply(m, s.Center)
	case *Circle:
		s.Center = apply(m, s.Center)
	}
}

// Parallel returns a copy of l, shifted sideways by distance onto the side
// of l where near lies. If near is on the line, the copy is shifted to the
// left of the direction from origin to end.
func Parallel(l *Line, distance float64, near vec.Vec2) *Line {
	d := l.End.Sub(l.Origin)
	n := normal(d)
	if cross(d, near.Sub(l.Origin)) < 0 {
		n = n.Mul(-1)
	}
	off := n.Mul(distance)
	return &Line{Origin: l.Origin.Add(off), End: l.End.Add(off)}
}

// Break splits a copy of p at the point at, which must lie on p.
// The first returned path runs from p's start to at, the second from at to
// p's end. The boolean is false if at does not split p into two pieces of
// positive length.
func Break(p Path, at vec.Vec2) (Path, Path, bool) {
	switch p := p.(type) {
	case *Line:
		first := &Line{Origin: p.Origin, End: at}
		second := &Line{Origin: at, End: p.End}
		if first.Length() < zeroLength || second.Length() < zeroLength {
			return nil, nil, false
		}
		return first, second, true
	case *Arc:
		deg := PointAngle(p.Center, at)
		off := arcOffset(p, deg)
		if off < angleTolerance || off > p.Span()-angleTolerance {
			return nil, nil, false
		}
		mid := p.StartAngle + off
		first := &Arc{Center: p.Center, Radius: p.Radius, StartAngle: p.StartAngle, EndAngle: mid}
		second := &Arc{Center: p.Center, Radius: p.Radius, StartAngle: mid, EndAngle: p.EndAngle}
		return first, second, true
	}
	return nil, nil, false
}

// SlopeIntersection returns the point where the infinite extensions of the
// two lines meet. The boolean is false for parallel or degenerate lines.
func SlopeIntersection(a, b *Line) (vec.Vec2, bool) {
	da := a.End.Sub(a.Origin)
	db := b.End.Sub(b.Origin)
	div := cross(da, db)
	if math.Abs(div) < zeroLength*da.Length()*db.Length() || div == 0 {
		return vec.Vec2{}, false
	}
	t := cross(b.Origin.Sub(a.Origin), db) / div
	return a.Origin.Add(da.Mul(t)), true
}
