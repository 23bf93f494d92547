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

// buildGuide returns the locus of points at distance radius from the path
// of s, on the side facing other. The fillet center lies on this locus.
// The boolean is false if no such locus exists.
func buildGuide(s side, radius float64, other vec.Vec2, accuracy float64) (shape.Path, bool) {
	switch p := s.path.(type) {
	case *shape.Line:
		return shape.Parallel(p, radius, other), true

	case *shape.Arc:
		// Use only the part of the arc between the common point and the
		// shard, so that the concavity test looks at the corner.
		first, second, ok := shape.Break(p, s.shard)
		if !ok {
			return nil, false
		}
		near := second.(*shape.Arc)
		if s.isStart() {
			near = first.(*shape.Arc)
		}

		guideRadius := p.Radius + radius
		if shape.IsArcConcaveToward(near, other) {
			guideRadius = p.Radius - radius
		}
		if shape.Round(guideRadius, accuracy) <= 0 {
			return nil, false
		}
		return shape.NewArc(p.Center, guideRadius, p.StartAngle, p.EndAngle), true
	}
	return nil, false
}
