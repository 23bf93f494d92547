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

// locateShard returns the point where a circle of the given radius around
// the matched endpoint crosses the path.
//
// Intersections are reported in order along the path, so the point nearest
// to the matched endpoint is the first one for a start point and the last
// one for an end point.
func locateShard(ref endpointRef, radius float64) (vec.Vec2, bool) {
	probe := shape.NewCircle(ref.point, radius)
	pts := shape.Intersect(ref.path, probe)
	if len(pts) == 0 {
		return vec.Vec2{}, false
	}
	if ref.isStart() {
		return pts[0], true
	}
	return pts[len(pts)-1], true
}
