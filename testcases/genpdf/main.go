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

// Command genpdf draws every test case as a PDF and a PNG image, for visual
// inspection of the expected fillets.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/preview"
	"seehuhn.de/go/fillet/shape"
	"seehuhn.de/go/fillet/testcases"
)

const (
	refDir = "testdata/reference"
	size   = 300
	margin = 20
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	p1, p2 := tc.Inputs()

	var inputs []shape.Shape
	for _, p := range []shape.Path{p1, p2} {
		if p != nil {
			inputs = append(inputs, p.ClonePath())
		}
	}
	if len(inputs) == 0 {
		return nil
	}
	layers := []preview.Layer{{Shapes: inputs, Gray: 0.75}}

	// failures are drawn with their inputs only
	if arc, err := fillet.Fillet(p1, p2, tc.Radius); err == nil {
		layers = append(layers, preview.Layer{Shapes: []shape.Shape{p1, p2, arc}})
	}

	c := preview.NewCanvas(size, size, shape.BoundsAll(inputs...), margin)
	if err := c.WritePDF(base+".pdf", layers...); err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = c.WritePNG(f, layers...)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
