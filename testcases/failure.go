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

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/shape"
)

var failureCases = []TestCase{
	{
		Name:   "no_common_endpoint",
		First:  line(0, 0, 10, 0),
		Second: line(20, 0, 20, 10),
		Radius: 1,
		Fail:   fillet.NoCommonEndpoint,
	},
	{
		Name:   "radius_too_large",
		First:  line(0, 0, 10, 0),
		Second: line(10, 0, 10, 10),
		Radius: 20,
		Fail:   fillet.NoShardIntersection,
	},
	{
		Name:   "collinear",
		First:  line(0, 0, 10, 0),
		Second: line(10, 0, 20, 0),
		Radius: 1,
		Fail:   fillet.NoGuideIntersection,
	},
	{
		// the tangent point on the second line is 3.46 away from the
		// corner, but the line is only 3 long
		Name:   "acute_too_short",
		First:  line(0, 0, 10, 0),
		Second: line(10, 0, 8.5, 1.5*math.Sqrt(3)),
		Radius: 2,
		Fail:   fillet.NoGuideIntersection,
	},
	{
		Name:   "arc_too_tight",
		First:  line(1, 0, 0, 0),
		Second: shape.NewArc(pt(0, 0), 1, 0, 90),
		Radius: 1,
		Fail:   fillet.NoGuideIntersection,
	},
	{
		Name:   "trim_to_nothing",
		First:  line(0, 0, 10, 0),
		Second: line(10, 0, 10, 2),
		Radius: 2,
		Fail:   fillet.DegenerateTrim,
	},
	{
		Name:   "zero_radius",
		First:  line(0, 0, 10, 0),
		Second: line(10, 0, 10, 10),
		Radius: 0,
		Fail:   fillet.InvalidInput,
	},
	{
		Name:   "negative_radius",
		First:  line(0, 0, 10, 0),
		Second: line(10, 0, 10, 10),
		Radius: -1,
		Fail:   fillet.InvalidInput,
	},
	{
		Name:   "missing_path",
		First:  line(0, 0, 10, 0),
		Radius: 1,
		Fail:   fillet.InvalidInput,
	},
}
