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

// Two quarter circles of radius 10 meeting at (0, 10): one around the
// origin, one around (-10, 10). The fillet center lies on the circle of
// radius 9 around the origin and on the circle of radius 11 around (-10, 10),
// which gives y = x + 8 and 2x² + 16x - 17 = 0.
var (
	cornerX     = (-16 + math.Sqrt(392)) / 4
	cornerAlpha = deg(cornerX+8, cornerX)
	cornerGamma = 360 + deg(cornerX-2, cornerX+10)
)

var arcCases = []TestCase{
	{
		Name:       "arc_corner",
		First:      shape.NewArc(pt(0, 0), 10, 0, 90),
		Second:     shape.NewArc(pt(-10, 10), 10, 270, 360),
		Radius:     1,
		Want:       shape.NewArc(pt(cornerX, cornerX+8), 1, cornerAlpha, cornerGamma-180),
		WantFirst:  shape.NewArc(pt(0, 0), 10, 0, cornerAlpha),
		WantSecond: shape.NewArc(pt(-10, 10), 10, 270, cornerGamma),
	},
}
