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

// Command export writes the test cases, together with the results computed
// by this package, to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/shape"
	"seehuhn.de/go/fillet/testcases"
)

// decimals is the number of decimal places written for coordinates.
const decimals = 9

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string  `json:"name"`
	First  string  `json:"first,omitempty"`
	Second string  `json:"second,omitempty"`
	Radius float64 `json:"radius"`

	Want       string `json:"want,omitempty"`
	WantFirst  string `json:"want_first,omitempty"`
	WantSecond string `json:"want_second,omitempty"`
	WantFail   string `json:"want_fail,omitempty"`

	Got       string `json:"got,omitempty"`
	GotFirst  string `json:"got_first,omitempty"`
	GotSecond string `json:"got_second,omitempty"`
	GotFail   string `json:"got_fail,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		First:  format(tc.First),
		Second: format(tc.Second),
		Radius: tc.Radius,
	}
	if tc.Want != nil {
		jtc.Want = format(tc.Want)
		jtc.WantFirst = format(tc.WantFirst)
		jtc.WantSecond = format(tc.WantSecond)
	} else {
		jtc.WantFail = tc.Fail.String()
	}

	p1, p2 := tc.Inputs()
	arc, err := fillet.Fillet(p1, p2, tc.Radius)
	if err != nil {
		jtc.GotFail = fillet.KindOf(err).String()
		return jtc
	}
	jtc.Got = format(arc)
	jtc.GotFirst = format(p1)
	jtc.GotSecond = format(p2)
	return jtc
}

func format(p shape.Path) string {
	if p == nil {
		return ""
	}
	return shape.Format(p, decimals)
}
