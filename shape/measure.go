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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// zeroLength is the length below which a path counts as degenerate.
	zeroLength = 1e-9

	// angleTolerance is the slack, in degrees, when testing whether a
	// direction lies on an arc.
	angleTolerance = 1e-9
)

// IsZeroLength reports whether a length is too small to be meaningful.
func IsZeroLength(length float64) bool {
	return length < zeroLength
}

// Tangent returns the unit direction in which p runs at the given endpoint,
// following p from Start to End.
func Tangent(p Path, e Endpoint) vec.Vec2 {
	switch p := p.(type) {
	case *Line:
		d := p.End.Sub(p.Origin)
		length := d.Length()
		if length == 0 {
			return vec.Vec2{}
		}
		return d.Mul(1 / length)
	case *Arc:
		rad := ToRadians(p.Angle(e))
		// counter-clockwise travel
		return vec.Vec2{X: -math.Sin(rad), Y: math.Cos(rad)}
	}
	return vec.Vec2{}
}

// IsArcConcaveToward reports whether the arc curves around the point p,
// i.e. whether p lies on the inner side of the arc.
//
// Points inside the arc's circle are always on the inner side. Otherwise p
// is on the inner side if the segment from the middle of the arc to p
// crosses the chord between the arc's endpoints.
func IsArcConcaveToward(a *Arc, p vec.Vec2) bool {
	if Distance(a.Center, p) <= a.Radius {
		return true
	}
	mid := MiddleOfArc(a)
	return segmentsTouch(mid, p, a.Point(Start), a.Point(End))
}

// segmentsTouch reports whether the closed segments a0–a1 and b0–b1 share
// at least one point, including the case of overlapping collinear segments.
func segmentsTouch(a0, a1, b0, b1 vec.Vec2) bool {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := cross(da, db)
	if div == 0 {
		if cross(da, b0.Sub(a0)) != 0 {
			return false // parallel, distinct
		}
		// collinear: compare projections onto the longer direction
		dir := da
		if db.Length() > da.Length() {
			dir = db
		}
		if dir.Length() == 0 {
			return a0 == b0
		}
		pa0, pa1 := 0.0, dir.Dot(da)
		pb0, pb1 := dir.Dot(b0.Sub(a0)), dir.Dot(b1.Sub(a0))
		return max(pa0, pa1) >= min(pb0, pb1) && max(pb0, pb1) >= min(pa0, pa1)
	}
	ta := cross(b0.Sub(a0), db) / div
	tb := cross(b0.Sub(a0), da) / div
	return 0 <= ta && ta <= 1 && 0 <= tb && tb <= 1
}

// Bounds returns the smallest axis-aligned rectangle containing the shape.
func Bounds(s Shape) rect.Rect {
	switch s := s.(type) {
	case *Line:
		return rect.Rect{
			LLx: min(s.Origin.X, s.End.X),
			LLy: min(s.Origin.Y, s.End.Y),
			URx: max(s.Origin.X, s.End.X),
			URy: max(s.Origin.Y, s.End.Y),
		}
	case *Arc:
		p0, p1 := s.Point(Start), s.Point(End)
		b := rect.Rect{
			LLx: min(p0.X, p1.X),
			LLy: min(p0.Y, p1.Y),
			URx: max(p0.X, p1.X),
			URy: max(p0.Y, p1.Y),
		}
		// include the extreme points of the circle which lie on the arc
		for _, deg := range []float64{0, 90, 180, 270} {
			if angleOnArc(s, deg, 0) {
				b = extend(b, PointOnArc(s, deg))
			}
		}
		return b
	case *Circle:
		return rect.Rect{
			LLx: s.Center.X - s.Radius,
			LLy: s.Center.Y - s.Radius,
			URx: s.Center.X + s.Radius,
			URy: s.Center.Y + s.Radius,
		}
	}
	return rect.Rect{}
}

// BoundsAll returns the union of the bounds of all shapes.
func BoundsAll(shapes ...Shape) rect.Rect {
	if len(shapes) == 0 {
		return rect.Rect{}
	}
	b := Bounds(shapes[0])
	for _, s := range shapes[1:] {
		sb := Bounds(s)
		b = extend(b, vec.Vec2{X: sb.LLx, Y: sb.LLy})
		b = extend(b, vec.Vec2{X: sb.URx, Y: sb.URy})
	}
	return b
}

func extend(b rect.Rect, p vec.Vec2) rect.Rect {
	b.LLx = min(b.LLx, p.X)
	b.LLy = min(b.LLy, p.Y)
	b.URx = max(b.URx, p.X)
	b.URy = max(b.URy, p.Y)
	return b
}
