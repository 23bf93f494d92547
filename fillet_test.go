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

package fillet_test

import (
	"errors"
	"maps"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/shape"
	"seehuhn.de/go/fillet/testcases"
)

// tol is the tolerance for geometric comparisons.
const tol = 1e-9

// arcView is an arc with its angles replaced by unit vectors, so that
// angles differing by a multiple of 360° compare equal.
type arcView struct {
	Center     vec.Vec2
	Radius     float64
	Start, End vec.Vec2
}

var cmpOpts = []cmp.Option{
	cmpopts.EquateApprox(0, tol),
	cmp.Transformer("arcView", func(a *shape.Arc) *arcView {
		if a == nil {
			return nil
		}
		unit := func(deg float64) vec.Vec2 {
			rad := shape.ToRadians(deg)
			return vec.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
		}
		return &arcView{
			Center: a.Center,
			Radius: a.Radius,
			Start:  unit(a.StartAngle),
			End:    unit(a.EndAngle),
		}
	}),
}

// forEachCase runs f for all scenarios, in a stable order.
func forEachCase(t *testing.T, f func(t *testing.T, tc testcases.TestCase)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				f(t, tc)
			})
		}
	}
}

func TestScenarios(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase) {
		p1, p2 := tc.Inputs()
		arc, err := fillet.Fillet(p1, p2, tc.Radius)

		if tc.Want == nil {
			if err == nil {
				t.Fatalf("expected failure %v, got %v", tc.Fail, arc)
			}
			if arc != nil {
				t.Errorf("failed construction returned an arc: %v", arc)
			}
			if !errors.Is(err, fillet.ErrNoFillet) {
				t.Errorf("error %v does not match ErrNoFillet", err)
			}
			if got := fillet.KindOf(err); got != tc.Fail {
				t.Errorf("failure kind %v, want %v (%v)", got, tc.Fail, err)
			}
			// the inputs must be untouched
			if d := cmp.Diff(tc.First, p1); d != "" {
				t.Errorf("first path modified (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tc.Second, p2); d != "" {
				t.Errorf("second path modified (-want +got):\n%s", d)
			}
			return
		}

		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tc.Want, arc, cmpOpts...); d != "" {
			t.Errorf("unexpected fillet (-want +got):\n%s", d)
		}
		if d := cmp.Diff(tc.WantFirst, p1, cmpOpts...); d != "" {
			t.Errorf("unexpected first path (-want +got):\n%s", d)
		}
		if d := cmp.Diff(tc.WantSecond, p2, cmpOpts...); d != "" {
			t.Errorf("unexpected second path (-want +got):\n%s", d)
		}
	})
}

// TestProperties checks the geometric properties every fillet must have,
// independently of the expected values.
func TestProperties(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase) {
		if tc.Want == nil {
			t.Skip("no fillet")
		}
		p1, p2 := tc.Inputs()
		arc, err := fillet.Fillet(p1, p2, tc.Radius)
		if err != nil {
			t.Fatal(err)
		}

		if arc.Radius != tc.Radius {
			t.Errorf("radius %g, want %g", arc.Radius, tc.Radius)
		}
		if span := arc.Span(); !(span > 0 && span < 180) {
			t.Errorf("span %g outside (0, 180)", span)
		}

		for i, p := range []shape.Path{p1, p2} {
			if d := distanceToCarrier(p, arc.Center); math.Abs(d-tc.Radius) > 1e-8 {
				t.Errorf("path %d: center at distance %g, want %g", i+1, d, tc.Radius)
			}
			pe, ae, ok := junction(p, arc)
			if !ok {
				t.Errorf("path %d does not end on the fillet", i+1)
				continue
			}
			u, v := shape.Tangent(p, pe), shape.Tangent(arc, ae)
			if c := u.X*v.Y - u.Y*v.X; math.Abs(c) > 1e-7 {
				t.Errorf("path %d: not tangent to the fillet (cross product %g)", i+1, c)
			}
			if shape.IsZeroLength(p.Length()) {
				t.Errorf("path %d trimmed to nothing", i+1)
			}
		}
	})
}

// TestOrderIndependence checks that swapping the inputs gives the same arc.
func TestOrderIndependence(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase) {
		if tc.Want == nil {
			t.Skip("no fillet")
		}
		p1, p2 := tc.Inputs()
		arc, err := fillet.Fillet(p2, p1, tc.Radius)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tc.Want, arc, cmpOpts...); d != "" {
			t.Errorf("unexpected fillet (-want +got):\n%s", d)
		}
	})
}

// TestRadiusMonotonic grows the radius on a short leg until the construction
// fails: first by trimming the leg to nothing, then by missing it altogether.
func TestRadiusMonotonic(t *testing.T) {
	cases := []struct {
		radius float64
		want   fillet.Kind
	}{
		{radius: 1},
		{radius: 2},
		{radius: 2.5},
		{radius: 3, want: fillet.DegenerateTrim},
		{radius: 4, want: fillet.NoShardIntersection},
	}
	for _, c := range cases {
		l1 := shape.NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
		l2 := shape.NewLine(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 3})
		_, err := fillet.Fillet(l1, l2, c.radius)
		if got := fillet.KindOf(err); got != c.want {
			t.Errorf("radius %g: got %v, want %v", c.radius, got, c.want)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	l := shape.NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
	var nilLine *shape.Line
	var nilArc *shape.Arc

	cases := []struct {
		name   string
		p1, p2 shape.Path
		radius float64
	}{
		{"nil first", nil, l, 1},
		{"typed nil line", nilLine, l, 1},
		{"typed nil arc", l, nilArc, 1},
		{"same path", l, l, 1},
		{"zero radius", l, l.ClonePath(), 0},
		{"NaN radius", l, l.ClonePath(), math.NaN()},
		{"infinite radius", l, l.ClonePath(), math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := fillet.Fillet(c.p1, c.p2, c.radius)
			if got := fillet.KindOf(err); got != fillet.InvalidInput {
				t.Errorf("got %v, want %v", got, fillet.InvalidInput)
			}
		})
	}
}

func TestSolverAccuracy(t *testing.T) {
	l1 := shape.NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
	l2 := shape.NewLine(vec.Vec2{X: 10.001, Y: 0}, vec.Vec2{X: 10, Y: 10})

	_, err := fillet.Fillet(l1.ClonePath(), l2.ClonePath(), 1)
	if got := fillet.KindOf(err); got != fillet.NoCommonEndpoint {
		t.Errorf("default accuracy: got %v, want %v", got, fillet.NoCommonEndpoint)
	}

	s := fillet.Solver{Accuracy: 0.01}
	if _, err := s.Fillet(l1.ClonePath(), l2.ClonePath(), 1); err != nil {
		t.Errorf("coarse accuracy: %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	l1 := shape.NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
	l2 := shape.NewLine(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 2})
	_, err := fillet.Fillet(l1, l2, 2)

	var e *fillet.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not a *fillet.Error", err)
	}
	if e.Kind != fillet.DegenerateTrim || e.Side != 1 {
		t.Errorf("got kind %v side %d, want %v side 1", e.Kind, e.Side, fillet.DegenerateTrim)
	}
	if want := "fillet: degenerate trim (path 2)"; err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if fillet.KindOf(errors.New("other")) != 0 {
		t.Error("KindOf of a foreign error should be 0")
	}
}

// TestConcurrent runs independent constructions in parallel.
func TestConcurrent(t *testing.T) {
	var s fillet.Solver
	var wg sync.WaitGroup
	for _, cases := range testcases.All {
		for _, tc := range cases {
			if tc.Want == nil {
				continue
			}
			for range 4 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					p1, p2 := tc.Inputs()
					arc, err := s.Fillet(p1, p2, tc.Radius)
					if err != nil {
						t.Errorf("%s: %v", tc.Name, err)
						return
					}
					if d := cmp.Diff(tc.Want, arc, cmpOpts...); d != "" {
						t.Errorf("%s: unexpected fillet (-want +got):\n%s", tc.Name, d)
					}
				}()
			}
		}
	}
	wg.Wait()
}

// distanceToCarrier returns the distance of p from the infinite line or the
// full circle which carries the path.
func distanceToCarrier(path shape.Path, p vec.Vec2) float64 {
	switch path := path.(type) {
	case *shape.Line:
		d := path.End.Sub(path.Origin)
		q := p.Sub(path.Origin)
		return math.Abs(d.X*q.Y-d.Y*q.X) / d.Length()
	case *shape.Arc:
		return math.Abs(shape.Distance(path.Center, p) - path.Radius)
	}
	return math.NaN()
}

// junction returns the endpoints of path and arc which coincide.
func junction(path shape.Path, arc *shape.Arc) (shape.Endpoint, shape.Endpoint, bool) {
	for _, pe := range []shape.Endpoint{shape.Start, shape.End} {
		for _, ae := range []shape.Endpoint{shape.Start, shape.End} {
			if shape.Distance(path.Point(pe), arc.Point(ae)) < 1e-7 {
				return pe, ae, true
			}
		}
	}
	return 0, 0, false
}
