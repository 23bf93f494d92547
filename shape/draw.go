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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendPath adds s as a new subpath to d and returns the extended path.
// Arcs and circles are approximated by cubic Bézier curves spanning at most
// 90° each.
func AppendPath(d *path.Data, s Shape) *path.Data {
	if d == nil {
		d = &path.Data{}
	}
	switch s := s.(type) {
	case *Line:
		return d.MoveTo(s.Origin).LineTo(s.End)
	case *Arc:
		return appendArc(d, s.Center, s.Radius, s.StartAngle, s.Span())
	case *Circle:
		return appendArc(d, s.Center, s.Radius, 0, 360).Close()
	}
	return d
}

// ToPath converts the shapes into a path with one subpath per shape.
func ToPath(shapes ...Shape) *path.Data {
	d := &path.Data{}
	for _, s := range shapes {
		d = AppendPath(d, s)
	}
	return d
}

// appendArc adds a counter-clockwise arc, starting at startDeg and sweeping
// through sweepDeg degrees.
func appendArc(d *path.Data, center vec.Vec2, r, startDeg, sweepDeg float64) *path.Data {
	d = d.MoveTo(PointOnCircle(center, r, startDeg))
	if sweepDeg <= 0 {
		return d
	}

	n := int(math.Ceil(sweepDeg / 90))
	step := ToRadians(sweepDeg / float64(n))
	// control point distance for a single piece, see
	// https://pomax.github.io/bezierinfo/#circles_cubic
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	phi := ToRadians(startDeg)
	for range n {
		c0, s0 := math.Cos(phi), math.Sin(phi)
		c1, s1 := math.Cos(phi+step), math.Sin(phi+step)
		p0 := vec.Vec2{X: center.X + r*c0, Y: center.Y + r*s0}
		p3 := vec.Vec2{X: center.X + r*c1, Y: center.Y + r*s1}
		p1 := p0.Add(vec.Vec2{X: -s0, Y: c0}.Mul(k))
		p2 := p3.Sub(vec.Vec2{X: -s1, Y: c1}.Mul(k))
		d = d.CubeTo(p1, p2, p3)
		phi += step
	}
	return d
}
