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

// Package commands implements the subcommands of the fillet command.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/internal/cli/config"
	"seehuhn.de/go/fillet/shape"
)

// outputDecimals is the number of decimal places of printed coordinates
// and angles.
const outputDecimals = 9

// Result is the outcome of one fillet construction, as printed by the
// solve and batch commands.
type Result struct {
	Name   string  `json:"name,omitempty"`
	Radius float64 `json:"radius"`

	// Fillet, First and Second are set on success, in the syntax
	// understood by [shape.Parse], rounded to nine decimal places.
	Fillet string `json:"fillet,omitempty"`
	First  string `json:"first,omitempty"`
	Second string `json:"second,omitempty"`

	// Failure is the failure kind, and Error the full message.
	Failure string `json:"failure,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK reports whether a fillet was constructed.
func (r *Result) OK() bool {
	return r.Error == ""
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var radius float64

	cmd := &cobra.Command{
		Use:   "solve PATH1 PATH2",
		Short: "Round the corner between two paths",
		Long: `Construct the fillet arc of the given radius between two paths which
share an endpoint, and print the arc together with the trimmed paths.

Paths are written as
  line:x0,y0,x1,y1
  arc:cx,cy,r,start,end     (angles in degrees, counter-clockwise)`,
		Example: `  fillet solve --radius 2 line:0,0,10,0 line:10,0,10,10
  fillet solve -r 1 -o json line:0,0,10,0 arc:20,0,10,90,180`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			res, err := Solve(cfg, args[0], args[1], radius)
			if res != nil {
				if perr := printResults(cmd.OutOrStdout(), cfg.Output, false, res); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "fillet radius")
	_ = cmd.MarkFlagRequired("radius")

	return cmd
}

// Solve parses both paths and constructs the fillet.
//
// Parse errors give a nil Result. If no fillet exists, the Result describes
// the failure and the solver error is returned as well.
func Solve(cfg *config.Config, first, second string, radius float64) (*Result, error) {
	p1, err := shape.Parse(first)
	if err != nil {
		return nil, err
	}
	p2, err := shape.Parse(second)
	if err != nil {
		return nil, err
	}

	s := fillet.Solver{Accuracy: cfg.Accuracy}
	res := &Result{Radius: radius}
	arc, err := s.Fillet(p1, p2, radius)
	if err != nil {
		res.Failure = fillet.KindOf(err).String()
		res.Error = err.Error()
		return res, err
	}
	res.Fillet = shape.Format(arc, outputDecimals)
	res.First = shape.Format(p1, outputDecimals)
	res.Second = shape.Format(p2, outputDecimals)
	return res, nil
}

// printResults writes results in the given output format.
// In text mode, a list prints one line per result.
func printResults(w io.Writer, format string, list bool, results ...*Result) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if list {
			return enc.Encode(results)
		}
		return enc.Encode(results[0])
	}

	for _, r := range results {
		var err error
		switch {
		case list && r.OK():
			_, err = fmt.Fprintf(w, "%s: %s %s %s\n", r.Name, r.Fillet, r.First, r.Second)
		case list:
			_, err = fmt.Fprintf(w, "%s: failed: %s\n", r.Name, r.Failure)
		case r.OK():
			_, err = fmt.Fprintf(w, "fillet: %s\nfirst:  %s\nsecond: %s\n", r.Fillet, r.First, r.Second)
		default:
			_, err = fmt.Fprintf(w, "failed: %s\n", r.Failure)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
