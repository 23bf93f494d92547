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

// ToRadians converts an angle from degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts an angle from radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NoRevolutions reduces an angle in degrees to the range [0, 360).
func NoRevolutions(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -tiny + 360 rounds up to 360
		deg = 0
	}
	return deg
}

// PointAngle returns the direction of the vector from one point to another,
// in degrees in the range [0, 360).
func PointAngle(from, to vec.Vec2) float64 {
	d := to.Sub(from)
	return NoRevolutions(ToDegrees(math.Atan2(d.Y, d.X)))
}

// LineAngle returns the direction of a line from its origin to its end,
// in degrees in the range [0, 360).
func LineAngle(l *Line) float64 {
	return PointAngle(l.Origin, l.End)
}

// PointOnArc returns the point of the arc's circle at the given angle.
func PointOnArc(a *Arc, deg float64) vec.Vec2 {
	return PointOnCircle(a.Center, a.Radius, deg)
}

// PointOnCircle returns the point at distance r from center in
// direction deg.
func PointOnCircle(center vec.Vec2, r, deg float64) vec.Vec2 {
	rad := ToRadians(deg)
	return vec.Vec2{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// MiddleOfArc returns the point halfway along the arc.
func MiddleOfArc(a *Arc) vec.Vec2 {
	return PointOnArc(a, a.StartAngle+a.Span()/2)
}

// arcOffset returns how far deg lies counter-clockwise from the start of the
// arc, in the range [0, 360).
func arcOffset(a *Arc, deg float64) float64 {
	return NoRevolutions(deg - a.StartAngle)
}

// angleOnArc reports whether the direction deg lies within the angular
// extent of the arc, allowing a tolerance of tol degrees at both ends.
func angleOnArc(a *Arc, deg, tol float64) bool {
	span := a.Span()
	off := arcOffset(a, deg)
	if off <= span+tol {
		return true
	}
	// just before the start
	return off >= 360-tol
}
