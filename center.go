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

// resolveCenter intersects the two guides. If they meet more than once,
// the meeting point closest to the common point is used.
func resolveCenter(g0, g1 shape.Path, common vec.Vec2) (vec.Vec2, bool) {
	pts := shape.Intersect(g0, g1)
	switch len(pts) {
	case 0:
		return vec.Vec2{}, false
	case 1:
		return pts[0], true
	default:
		return shape.Closest(common, pts), true
	}
}
