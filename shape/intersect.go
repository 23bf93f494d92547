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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// paramTolerance is the slack allowed on the line parameter t ∈ [0, 1].
const paramTolerance = 1e-9

// Intersect returns the points where the shapes a and b meet.
//
// The result is sorted by position along a: by the line parameter from
// origin to end, by the counter-clockwise offset from the start angle for
// arcs, and by the angle in [0, 360) for circles. Points closer together than
// 1e-9 are reported once. Overlapping collinear lines and identical circles
// have no isolated intersection points and give an empty result.
func Intersect(a, b Shape) []vec.Vec2 {
	var candidates []vec.Vec2
	switch a := a.(type) {
	case *Line:
		if b, ok := b.(*Line); ok {
			if p, ok := lineLine(a, b); ok {
				candidates = append(candidates, p)
			}
			break
		}
		c, r, ok := circleOf(b)
		if !ok {
			return nil
		}
		candidates = lineCircle(a, c, r)
	default:
		ca, ra, ok := circleOf(a)
		if !ok {
			return nil
		}
		if b, ok := b.(*Line); ok {
			candidates = lineCircle(b, ca, ra)
			break
		}
		cb, rb, ok := circleOf(b)
		if !ok {
			return nil
		}
		candidates = circleCircle(ca, ra, cb, rb)
	}

	type hit struct {
		p   vec.Vec2
		pos float64
	}
	var hits []hit
	for _, p := range candidates {
		if !onShape(a, p) || !onShape(b, p) {
			continue
		}
		hits = append(hits, hit{p: p, pos: position(a, p)})
	}
	slices.SortStableFunc(hits, func(x, y hit) int {
		return cmp.Compare(x.pos, y.pos)
	})

	var res []vec.Vec2
	for _, h := range hits {
		if len(res) > 0 && Distance(res[len(res)-1], h.p) < zeroLength {
			continue
		}
		res = append(res, h.p)
	}
	return res
}

// circleOf returns the circle underlying an arc or circle.
func circleOf(s Shape) (vec.Vec2, float64, bool) {
	switch s := s.(type) {
	case *Arc:
		return s.Center, s.Radius, true
	case *Circle:
		return s.Center, s.Radius, true
	}
	return vec.Vec2{}, 0, false
}

// onShape reports whether a point known to lie on the line or circle
// underlying s is within the extent of s.
func onShape(s Shape, p vec.Vec2) bool {
	switch s := s.(type) {
	case *Line:
		t := lineParam(s, p)
		return t >= -paramTolerance && t <= 1+paramTolerance
	case *Arc:
		return angleOnArc(s, PointAngle(s.Center, p), angleTolerance)
	case *Circle:
		return true
	}
	return false
}

// position returns the sort key of a point along s.
func position(s Shape, p vec.Vec2) float64 {
	switch s := s.(type) {
	case *Line:
		return lineParam(s, p)
	case *Arc:
		off := arcOffset(s, PointAngle(s.Center, p))
		if off > s.Span()+angleTolerance {
			// within tolerance before the start
			off -= 360
		}
		return off
	case *Circle:
		return PointAngle(s.Center, p)
	}
	return 0
}

// lineParam returns t such that p is the projection of
// l.Origin + t*(l.End-l.Origin).
func lineParam(l *Line, p vec.Vec2) float64 {
	d := l.End.Sub(l.Origin)
	dd := d.Dot(d)
	if dd == 0 {
		return 0
	}
	return p.Sub(l.Origin).Dot(d) / dd
}

// lineLine intersects two bounded line segments.
// Parallel segments never intersect, even if they overlap.
func lineLine(a, b *Line) (vec.Vec2, bool) {
	da := a.End.Sub(a.Origin)
	db := b.End.Sub(b.Origin)
	div := cross(da, db)
	if div == 0 || math.Abs(div) < zeroLength*da.Length()*db.Length() {
		return vec.Vec2{}, false
	}
	w := b.Origin.Sub(a.Origin)
	ta := cross(w, db) / div
	tb := cross(w, da) / div
	if ta < -paramTolerance || ta > 1+paramTolerance ||
		tb < -paramTolerance || tb > 1+paramTolerance {
		return vec.Vec2{}, false
	}
	return a.Origin.Add(da.Mul(ta)), true
}

// lineCircle intersects the infinite extension of l with a full circle.
// The points are returned in the direction of l.
func lineCircle(l *Line, center vec.Vec2, r float64) []vec.Vec2 {
	d := l.End.Sub(l.Origin)
	length := d.Length()
	if length == 0 {
		return nil
	}
	u := d.Mul(1 / length)

	// foot of the perpendicular from the center onto the line
	foot := l.Origin.Add(u.Mul(center.Sub(l.Origin).Dot(u)))
	dist := Distance(center, foot)
	h2 := r*r - dist*dist
	if h2 < 0 {
		if h2 < -zeroLength*max(1, r*r) {
			return nil
		}
		h2 = 0
	}
	h := math.Sqrt(h2)
	if h < zeroLength {
		return []vec.Vec2{foot}
	}
	return []vec.Vec2{foot.Sub(u.Mul(h)), foot.Add(u.Mul(h))}
}

// circleCircle intersects two full circles.
func circleCircle(c0 vec.Vec2, r0 float64, c1 vec.Vec2, r1 float64) []vec.Vec2 {
	delta := c1.Sub(c0)
	d := delta.Length()
	if d < zeroLength {
		return nil // concentric
	}
	tol := zeroLength * max(1, r0+r1)
	if d > r0+r1+tol || d < math.Abs(r0-r1)-tol {
		return nil
	}

	// distance from c0 to the radical line, along c0→c1
	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	u := delta.Mul(1 / d)
	base := c0.Add(u.Mul(a))
	if h < zeroLength {
		return []vec.Vec2{base}
	}
	n := vec.Vec2{X: -u.Y, Y: u.X}
	return []vec.Vec2{base.Add(n.Mul(h)), base.Sub(n.Mul(h))}
}
