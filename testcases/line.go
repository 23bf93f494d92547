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

// tangent length at a 45° turn with unit radius: tan(22.5°)
var t45 = math.Sqrt2 - 1

var sqrt3 = math.Sqrt(3)

var lineCases = []TestCase{
	{
		Name:       "right_angle",
		First:      line(0, 0, 10, 0),
		Second:     line(10, 0, 10, 10),
		Radius:     2,
		Want:       shape.NewArc(pt(8, 2), 2, 270, 0),
		WantFirst:  line(0, 0, 8, 0),
		WantSecond: line(10, 2, 10, 10),
	},
	{
		// same corner, paths given in the other order
		Name:       "right_angle_reversed",
		First:      line(10, 0, 10, 10),
		Second:     line(0, 0, 10, 0),
		Radius:     2,
		Want:       shape.NewArc(pt(8, 2), 2, 270, 0),
		WantFirst:  line(10, 2, 10, 10),
		WantSecond: line(0, 0, 8, 0),
	},
	{
		Name:       "right_angle_start_start",
		First:      line(0, 10, 0, 0),
		Second:     line(0, 10, 10, 10),
		Radius:     1,
		Want:       shape.NewArc(pt(1, 9), 1, 90, 180),
		WantFirst:  line(0, 9, 0, 0),
		WantSecond: line(1, 10, 10, 10),
	},
	{
		Name:       "obtuse",
		First:      line(0, 0, 10, 0),
		Second:     line(10, 0, 20, 10),
		Radius:     1,
		Want:       shape.NewArc(pt(10-t45, 1), 1, 270, 315),
		WantFirst:  line(0, 0, 10-t45, 0),
		WantSecond: line(10+t45/math.Sqrt2, t45/math.Sqrt2, 20, 10),
	},
	{
		Name:       "acute",
		First:      line(0, 0, 10, 0),
		Second:     line(10, 0, 5, 5*sqrt3),
		Radius:     1,
		Want:       shape.NewArc(pt(10-sqrt3, 1), 1, 270, 30),
		WantFirst:  line(0, 0, 10-sqrt3, 0),
		WantSecond: line(10-sqrt3/2, 1.5, 5, 5*sqrt3),
	},
}
