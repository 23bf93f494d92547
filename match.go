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

package fillet

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/shape"
)

// endpointRef identifies one endpoint of one of the input paths.
type endpointRef struct {
	path  shape.Path
	end   shape.Endpoint
	point vec.Vec2
}

func (r endpointRef) isStart() bool {
	return r.end == shape.Start
}

// side collects what the solver knows about one of the two input paths.
type side struct {
	endpointRef

	// shard is a point on the path at distance radius from the common
	// point, used to tell the near part of the path from the far part.
	shard vec.Vec2
}

// matchOrder lists the endpoint combinations in the order they are tried.
var matchOrder = [4][2]shape.Endpoint{
	{shape.Start, shape.Start},
	{shape.Start, shape.End},
	{shape.End, shape.Start},
	{shape.End, shape.End},
}

// matchEndpoints finds the endpoints at which p1 and p2 meet.
// The first coinciding combination in matchOrder wins, even if a later
// combination also coincides.
func matchEndpoints(p1, p2 shape.Path, accuracy float64) ([2]endpointRef, bool) {
	for _, m := range matchOrder {
		a := p1.Point(m[0])
		b := p2.Point(m[1])
		if shape.EqualRounded(a, b, accuracy) {
			return [2]endpointRef{
				{path: p1, end: m[0], point: a},
				{path: p2, end: m[1], point: b},
			}, true
		}
	}
	return [2]endpointRef{}, false
}
