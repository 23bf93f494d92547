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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fillet"
	"seehuhn.de/go/fillet/internal/cli/config"
	"seehuhn.de/go/fillet/preview"
	"seehuhn.de/go/fillet/shape"
)

// inputGray is the gray level used to draw the untrimmed input paths.
const inputGray = 0.75

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var radius float64
	var out string

	cmd := &cobra.Command{
		Use:   "render PATH1 PATH2",
		Short: "Draw two paths and their fillet",
		Long: `Construct the fillet between two paths and draw the result as a PDF or
PNG image. The input paths are drawn in light gray, the trimmed paths and the
fillet in black.

If no fillet exists, only the input paths are drawn and the command fails.
Unless --format is given, the image format follows the extension of the
output file.`,
		Example: `  fillet render -r 2 --out corner.pdf line:0,0,10,0 line:10,0,10,10
  fillet render -r 1 --out corner.png --width 800 line:0,0,10,0 arc:20,0,10,90,180`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], args[1], radius, out)
		},
	}

	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "fillet radius")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().String("format", config.FormatPDF, "image format (pdf|png)")
	cmd.Flags().Int("width", 400, "image width")
	cmd.Flags().Int("height", 400, "image height")
	cmd.Flags().Float64("margin", 20, "image margin")
	cmd.Flags().Float64("line-width", 1.5, "line width")
	_ = cmd.MarkFlagRequired("radius")
	_ = cmd.MarkFlagRequired("out")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatPDF, config.FormatPNG}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, first, second string, radius float64, out string) error {
	cfg := config.FromContext(cmd.Context())

	format := cfg.Render.Format
	if !cmd.Flags().Changed("format") {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".png":
			format = config.FormatPNG
		case ".pdf":
			format = config.FormatPDF
		}
	}

	p1, err := shape.Parse(first)
	if err != nil {
		return err
	}
	p2, err := shape.Parse(second)
	if err != nil {
		return err
	}

	inputs := []shape.Shape{p1.ClonePath(), p2.ClonePath()}
	layers := []preview.Layer{{Shapes: inputs, Gray: inputGray}}

	s := fillet.Solver{Accuracy: cfg.Accuracy}
	arc, solveErr := s.Fillet(p1, p2, radius)
	if solveErr == nil {
		layers = append(layers, preview.Layer{Shapes: []shape.Shape{p1, p2, arc}})
	}

	c := preview.NewCanvas(cfg.Render.Width, cfg.Render.Height,
		shape.BoundsAll(inputs...), cfg.Render.Margin)
	c.LineWidth = cfg.Render.LineWidth

	switch format {
	case config.FormatPNG:
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		err = c.WritePNG(f, layers...)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	default:
		if err := c.WritePDF(out, layers...); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	}

	if solveErr != nil {
		return solveErr
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", out, arc)
	}
	return nil
}
