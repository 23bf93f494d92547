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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/shape"
)

// outcome is the result of the tangent computation for one path.
// Nothing is written to the path until commit is called.
type outcome struct {
	// filletAngle is the direction from the fillet center to the point
	// of tangency, in degrees.
	filletAngle float64

	point vec.Vec2 // new endpoint, for lines
	angle float64  // new endpoint angle, for arcs
}

// commit moves the matched endpoint of the path to the point of tangency.
func (o outcome) commit(ref endpointRef) {
	switch p := ref.path.(type) {
	case *shape.Line:
		p.SetPoint(ref.end, o.point)
	case *shape.Arc:
		p.SetAngle(ref.end, o.angle)
	}
}

// resolveTangent finds where a fillet around center touches the path.
// It fails with NoGuideIntersection if no point of tangency exists and with
// DegenerateTrim if moving the endpoint there would leave nothing of the
// path.
func resolveTangent(ref endpointRef, center vec.Vec2) (outcome, Kind) {
	var o outcome
	var remaining float64

	switch p := ref.path.(type) {
	case *shape.Line:
		// A unit segment along the y-axis, turned by the line's angle,
		// is perpendicular to the line.
		perp := shape.NewLine(vec.Vec2{}, vec.Vec2{X: 0, Y: 1})
		shape.Rotate(perp, shape.LineAngle(p), vec.Vec2{})
		shape.Translate(perp, center)

		touch, ok := shape.SlopeIntersection(p, perp)
		if !ok {
			return outcome{}, NoGuideIntersection
		}
		o.point = touch
		o.filletAngle = shape.PointAngle(center, touch)
		remaining = trimmedLineLength(p, ref.end, touch)

	case *shape.Arc:
		toCenter := shape.PointAngle(p.Center, center)
		o.angle = sameRevolution(toCenter, p.Angle(ref.end))
		o.filletAngle = toCenter
		if !shape.IsArcConcaveToward(p, center) {
			o.filletAngle = shape.NoRevolutions(toCenter + 180)
		}
		remaining = trimmedArcLength(p, ref.end, o.angle)

	default:
		return outcome{}, InvalidInput
	}

	if shape.IsZeroLength(remaining) {
		return outcome{}, DegenerateTrim
	}
	return o, 0
}

// trimmedLineLength returns the length l would have after moving endpoint e
// to p. Points on the far side of the kept endpoint give zero.
func trimmedLineLength(l *shape.Line, e shape.Endpoint, p vec.Vec2) float64 {
	kept := l.Point(e.Other())
	d := l.Point(e).Sub(kept)
	length := d.Length()
	if length == 0 {
		return 0
	}
	return max(0, p.Sub(kept).Dot(d)/length)
}

// trimmedArcLength returns the length a would have after moving the angle
// of endpoint e to deg. Angles outside the extent of a give zero.
func trimmedArcLength(a *shape.Arc, e shape.Endpoint, deg float64) float64 {
	span := a.Span()
	off := shape.NoRevolutions(deg - a.StartAngle)
	if off > span {
		return 0
	}
	remaining := off
	if e == shape.Start {
		remaining = span - off
	}
	return shape.ToRadians(remaining) * a.Radius
}

// sameRevolution returns the angle equivalent to deg which is closest to
// ref, so that updated arc angles stay near their old values.
func sameRevolution(deg, ref float64) float64 {
	delta := math.Mod(deg-ref, 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return ref + delta
}
