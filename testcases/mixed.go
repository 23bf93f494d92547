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

package testcases

import (
	"math"

	"seehuhn.de/go/fillet/shape"
)

// A line running into the outside of an arc of radius 10 centred at (20, 0).
// The fillet of radius 2 touches the circle of radius 12 around the arc
// center at height 2.
var (
	outsideX    = 20 - math.Sqrt(140)
	outsideBeta = deg(2, math.Sqrt(140))
)

// A line running along the x-axis into the inside of a quarter circle of
// radius 10 around the origin.
var (
	insideX     = math.Sqrt(80)
	insideDelta = deg(1, math.Sqrt(80))
)

var mixedCases = []TestCase{
	{
		Name:       "line_arc_outside",
		First:      line(0, 0, 10, 0),
		Second:     shape.NewArc(pt(20, 0), 10, 90, 180),
		Radius:     2,
		Want:       shape.NewArc(pt(outsideX, 2), 2, 270, 360-outsideBeta),
		WantFirst:  line(0, 0, outsideX, 0),
		WantSecond: shape.NewArc(pt(20, 0), 10, 90, 180-outsideBeta),
	},
	{
		Name:       "arc_line_outside",
		First:      shape.NewArc(pt(20, 0), 10, 90, 180),
		Second:     line(0, 0, 10, 0),
		Radius:     2,
		Want:       shape.NewArc(pt(outsideX, 2), 2, 270, 360-outsideBeta),
		WantFirst:  shape.NewArc(pt(20, 0), 10, 90, 180-outsideBeta),
		WantSecond: line(0, 0, outsideX, 0),
	},
	{
		Name:       "line_arc_inside",
		First:      line(10, 0, 0, 0),
		Second:     shape.NewArc(pt(0, 0), 10, 0, 90),
		Radius:     1,
		Want:       shape.NewArc(pt(insideX, 1), 1, 270, insideDelta),
		WantFirst:  line(insideX, 0, 0, 0),
		WantSecond: shape.NewArc(pt(0, 0), 10, insideDelta, 90),
	},
}
