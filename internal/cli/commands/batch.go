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

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/internal/cli/config"
)

// BatchFile is the format of the input file of the batch command.
//
//	radius: 1
//	pairs:
//	  - name: corner
//	    first: line:0,0,10,0
//	    second: line:10,0,10,10
//	    radius: 2
type BatchFile struct {
	// Radius is used for pairs which do not set their own radius.
	Radius float64     `yaml:"radius"`
	Pairs  []BatchPair `yaml:"pairs"`
}

// BatchPair is one fillet problem in a batch file.
type BatchPair struct {
	Name   string  `yaml:"name"`
	First  string  `yaml:"first"`
	Second string  `yaml:"second"`
	Radius float64 `yaml:"radius,omitempty"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Construct fillets for all pairs listed in a YAML file",
		Long: `Read a list of named path pairs from a YAML file and construct a fillet
for each of them. One result is printed per pair. Use "-" to read from
standard input.

The command fails if at least one pair has no fillet.`,
		Example: `  fillet batch corners.yaml
  fillet batch -o json - < corners.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0])
		},
	}
	return cmd
}

func runBatch(cmd *cobra.Command, fileName string) error {
	cfg := config.FromContext(cmd.Context())

	var r io.Reader
	if fileName == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(fileName)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	batch, err := ReadBatch(r)
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}

	results := make([]*Result, 0, len(batch.Pairs))
	failed := 0
	for i, pair := range batch.Pairs {
		name := pair.Name
		if name == "" {
			name = fmt.Sprintf("pair%d", i+1)
		}
		radius := pair.Radius
		if radius == 0 {
			radius = batch.Radius
		}

		res, err := Solve(cfg, pair.First, pair.Second, radius)
		if res == nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err != nil {
			failed++
		}
		res.Name = name
		results = append(results, res)
	}

	if err := printResults(cmd.OutOrStdout(), cfg.Output, true, results...); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d pairs failed: %w", failed, len(results), fillet.ErrNoFillet)
	}
	return nil
}

// ReadBatch decodes a batch file.
func ReadBatch(r io.Reader) (*BatchFile, error) {
	var batch BatchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&batch); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty batch file")
		}
		return nil, err
	}
	if len(batch.Pairs) == 0 {
		return nil, errors.New("no pairs in batch file")
	}
	return &batch, nil
}
