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

	"seehuhn.de/go/geom/vec"
)

// DefaultAccuracy is the rounding step used to decide whether two
// endpoints coincide.
const DefaultAccuracy = 1e-7

// Round rounds x to the nearest multiple of accuracy.
func Round(x, accuracy float64) float64 {
	if accuracy <= 0 {
		return x
	}
	return math.Round(x/accuracy) * accuracy
}

// EqualRounded reports whether p and q agree after rounding both
// coordinates to the given accuracy.
func EqualRounded(p, q vec.Vec2, accuracy float64) bool {
	if accuracy <= 0 {
		return p == q
	}
	return math.Round(p.X/accuracy) == math.Round(q.X/accuracy) &&
		math.Round(p.Y/accuracy) == math.Round(q.Y/accuracy)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q vec.Vec2) float64 {
	return q.Sub(p).Length()
}

// Closest returns the candidate nearest to ref. Ties are resolved in favour
// of the earlier candidate. Closest panics if candidates is empty.
func Closest(ref vec.Vec2, candidates []vec.Vec2) vec.Vec2 {
	best := candidates[0]
	bestDist := Distance(ref, best)
	for _, p := range candidates[1:] {
		if d := Distance(ref, p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// cross returns the z-component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// normal returns the unit normal of d, rotated 90° counter-clockwise.
// The zero vector is returned unchanged.
func normal(d vec.Vec2) vec.Vec2 {
	length := d.Length()
	if length == 0 {
		return d
	}
	return vec.Vec2{X: -d.Y / length, Y: d.X / length}
}
