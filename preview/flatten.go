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

package preview

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polyline is a flattened subpath in device coordinates.
type polyline []vec.Vec2

// flatten converts a path into polylines in device space.
func (c *Canvas) flatten(d *path.Data) []polyline {
	var res []polyline
	var cur polyline
	var pen, start vec.Vec2

	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}

	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			pen = c.toDevice(pts[0])
			start = pen
			cur = polyline{pen}
		case path.CmdLineTo:
			pen = c.toDevice(pts[0])
			cur = append(cur, pen)
		case path.CmdQuadTo:
			p1, p2 := c.toDevice(pts[0]), c.toDevice(pts[1])
			cur = c.flattenQuadratic(cur, pen, p1, p2)
			pen = p2
		case path.CmdCubeTo:
			p1, p2, p3 := c.toDevice(pts[0]), c.toDevice(pts[1]), c.toDevice(pts[2])
			cur = c.flattenCubic(cur, pen, p1, p2, p3)
			pen = p3
		case path.CmdClose:
			if pen != start {
				cur = append(cur, start)
			}
			pen = start
			flush()
		}
	}
	flush()
	return res
}

// flattenQuadratic appends the points of a quadratic Bézier curve, excluding
// p0. All points are in device space.
func (c *Canvas) flattenQuadratic(out polyline, p0, p1, p2 vec.Vec2) polyline {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errDev := e.Length(); errDev > c.flatness() {
		n = int(math.Ceil(math.Sqrt(errDev / c.flatness())))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		out = append(out, p0.Mul(omt*omt).Add(p1.Mul(2*omt*t)).Add(p2.Mul(t*t)))
	}
	return out
}

// flattenCubic appends the points of a cubic Bézier curve, excluding p0.
// The number of segments is chosen using Wang's formula.
func (c *Canvas) flattenCubic(out polyline, p0, p1, p2, p3 vec.Vec2) polyline {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * c.flatness())); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		out = append(out, pt)
	}
	return out
}
