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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Parse reads a path in one of the forms
//
//	line:x0,y0,x1,y1
//	arc:cx,cy,r,start,end
//
// where the arc angles are in degrees.
func Parse(s string) (Path, error) {
	kind, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("path %q: missing type prefix", s)
	}

	var vals []float64
	for _, f := range strings.Split(args, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", s, err)
		}
		vals = append(vals, x)
	}

	switch strings.ToLower(kind) {
	case "line":
		if len(vals) != 4 {
			return nil, fmt.Errorf("path %q: line needs 4 numbers, got %d", s, len(vals))
		}
		return NewLine(vec.Vec2{X: vals[0], Y: vals[1]}, vec.Vec2{X: vals[2], Y: vals[3]}), nil
	case "arc":
		if len(vals) != 5 {
			return nil, fmt.Errorf("path %q: arc needs 5 numbers, got %d", s, len(vals))
		}
		if vals[2] <= 0 {
			return nil, fmt.Errorf("path %q: arc radius must be positive", s)
		}
		return NewArc(vec.Vec2{X: vals[0], Y: vals[1]}, vals[2], vals[3], vals[4]), nil
	default:
		return nil, fmt.Errorf("path %q: unknown type %q", s, kind)
	}
}

func (l *Line) String() string {
	return "line:" + formatNumbers(l.Origin.X, l.Origin.Y, l.End.X, l.End.Y)
}

func (a *Arc) String() string {
	return "arc:" + formatNumbers(a.Center.X, a.Center.Y, a.Radius, a.StartAngle, a.EndAngle)
}

func (c *Circle) String() string {
	return "circle:" + formatNumbers(c.Center.X, c.Center.Y, c.Radius)
}

// Format is like the String methods, but rounds all numbers to the given
// number of decimal places and reduces arc angles to [0, 360).
func Format(s Shape, decimals int) string {
	f := func(xs ...float64) string {
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = formatFixed(x, decimals)
		}
		return strings.Join(parts, ",")
	}
	switch s := s.(type) {
	case *Line:
		return "line:" + f(s.Origin.X, s.Origin.Y, s.End.X, s.End.Y)
	case *Arc:
		return "arc:" + f(s.Center.X, s.Center.Y, s.Radius,
			reduceAngle(s.StartAngle, decimals), reduceAngle(s.EndAngle, decimals))
	case *Circle:
		return "circle:" + f(s.Center.X, s.Center.Y, s.Radius)
	}
	return ""
}

// reduceAngle maps deg to [0, 360), where angles which round to 360 count
// as 0.
func reduceAngle(deg float64, decimals int) float64 {
	deg = NoRevolutions(deg)
	if formatFixed(deg, decimals) == "360" {
		return 0
	}
	return deg
}

func formatFixed(x float64, decimals int) string {
	s := strconv.FormatFloat(x, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func formatNumbers(xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
