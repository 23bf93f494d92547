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

// Package testcases collects named fillet problems together with their
// expected solutions.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/shape"
)

// TestCase defines a single fillet problem.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	First  shape.Path // the first input path (do not modify, use Inputs)
	Second shape.Path // the second input path (do not modify, use Inputs)
	Radius float64    // the requested fillet radius

	// Want is the expected fillet arc, or nil if the construction must fail.
	Want *shape.Arc

	// WantFirst and WantSecond are the trimmed input paths on success.
	WantFirst  shape.Path
	WantSecond shape.Path

	// Fail is the expected failure kind when Want is nil.
	Fail fillet.Kind
}

// Inputs returns fresh copies of the two input paths.
func (tc TestCase) Inputs() (shape.Path, shape.Path) {
	var p1, p2 shape.Path
	if tc.First != nil {
		p1 = tc.First.ClonePath()
	}
	if tc.Second != nil {
		p2 = tc.Second.ClonePath()
	}
	return p1, p2
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// line is a helper to create a line segment.
func line(x0, y0, x1, y1 float64) *shape.Line {
	return shape.NewLine(pt(x0, y0), pt(x1, y1))
}

// deg returns the direction of (x, y) in degrees.
func deg(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}
