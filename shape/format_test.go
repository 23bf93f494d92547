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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Path
	}{
		{"line:0,0,10,0", NewLine(pt(0, 0), pt(10, 0))},
		{"line:-1.5,2e1,3,.25", NewLine(pt(-1.5, 20), pt(3, 0.25))},
		{" ARC: 1, 2, 3, 0, 90 ", NewArc(pt(1, 2), 3, 0, 90)},
		{"arc:0,0,1,270,-90", NewArc(pt(0, 0), 1, 270, -90)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", c.in, d)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"0,0,1,1",
		"line:0,0,1",
		"line:0,0,1,1,1",
		"line:a,b,c,d",
		"line:",
		"arc:0,0,0,0,90",
		"arc:0,0,-1,0,90",
		"arc:0,0,1,0",
		"circle:0,0,1",
	} {
		if p, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = %v, want an error", in, p)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range []Path{
		NewLine(pt(0.1, 1.0/3), pt(-7, 1e10)),
		NewArc(pt(2, -2), 0.5, 12.25, 400),
	} {
		got, err := Parse(p.(interface{ String() string }).String())
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(p, got); d != "" {
			t.Errorf("(-want +got):\n%s", d)
		}
	}
	if got := NewCircle(pt(1, 2), 3).String(); got != "circle:1,2,3" {
		t.Errorf("got %q", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		s    Shape
		want string
	}{
		{NewLine(pt(0, 0), pt(10, 0)), "line:0,0,10,0"},
		{NewLine(pt(-1e-12, 1.0/3), pt(2.5, -4)), "line:0,0.333333333,2.5,-4"},
		{NewArc(pt(8, 2), 2, 270, 359.99999999999), "arc:8,2,2,270,0"},
		{NewArc(pt(0, 0), 1, -90, 450), "arc:0,0,1,270,90"},
		{NewArc(pt(0, 0), 1, 360, 720.5), "arc:0,0,1,0,0.5"},
		{NewCircle(pt(1, 2), 3), "circle:1,2,3"},
	}
	for _, c := range cases {
		if got := Format(c.s, 9); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
	if got := Format(NewLine(pt(1.24, 0), pt(0, 0)), 1); got != "line:1.2,0,0,0" {
		t.Errorf("got %q", got)
	}
}

func TestToPath(t *testing.T) {
	cases := []struct {
		name   string
		s      Shape
		cmds   int
		coords int
		last   []float64
	}{
		{"line", NewLine(pt(1, 2), pt(3, 4)), 2, 2, []float64{3, 4}},
		{"quarter arc", NewArc(pt(0, 0), 1, 0, 90), 2, 4, []float64{0, 1}},
		{"half arc", NewArc(pt(0, 0), 1, 0, 180), 3, 7, []float64{-1, 0}},
		{"wrapping arc", NewArc(pt(0, 0), 2, 315, 45), 2, 4, []float64{2 * 0.7071067811865476, 2 * 0.7071067811865476}},
		{"empty arc", NewArc(pt(0, 0), 1, 10, 10), 1, 1, nil},
		{"circle", NewCircle(pt(0, 0), 1), 6, 13, []float64{1, 0}},
	}
	for _, c := range cases {
		d := ToPath(c.s)
		if len(d.Cmds) != c.cmds || len(d.Coords) != c.coords {
			t.Errorf("%s: got %d commands and %d points, want %d and %d",
				c.name, len(d.Cmds), len(d.Coords), c.cmds, c.coords)
			continue
		}
		if c.last != nil {
			got := d.Coords[len(d.Coords)-1]
			if diff := cmp.Diff(pt(c.last[0], c.last[1]), got, approx); diff != "" {
				t.Errorf("%s: last point (-want +got):\n%s", c.name, diff)
			}
		}
	}

	if d := ToPath(NewLine(pt(0, 0), pt(1, 0)), NewArc(pt(0, 0), 1, 0, 90)); len(d.Cmds) != 4 {
		t.Errorf("got %d commands, want 4", len(d.Cmds))
	}
	if d := AppendPath(nil, NewLine(pt(0, 0), pt(1, 0))); len(d.Cmds) != 2 {
		t.Errorf("got %d commands, want 2", len(d.Cmds))
	}
}

// TestArcApproximation checks that the Bézier pieces stay close to the circle.
func TestArcApproximation(t *testing.T) {
	const r = 10.0
	d := ToPath(NewArc(pt(3, 4), r, 30, 300))
	p0 := d.Coords[0]
	for i := 1; i+2 < len(d.Coords); i += 3 {
		p1, p2, p3 := d.Coords[i], d.Coords[i+1], d.Coords[i+2]
		for _, u := range []float64{0.25, 0.5, 0.75} {
			v := 1 - u
			q := p0.Mul(v * v * v).
				Add(p1.Mul(3 * v * v * u)).
				Add(p2.Mul(3 * v * u * u)).
				Add(p3.Mul(u * u * u))
			if dist := Distance(pt(3, 4), q); dist < r*(1-1e-3) || dist > r*(1+1e-3) {
				t.Errorf("piece %d at t=%g: distance %g from the center", i/3, u, dist)
			}
		}
		p0 = p3
	}
}
