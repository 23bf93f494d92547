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

package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/shape"
)

// dotSides is the number of sides of the polygon used for round joins.
const dotSides = 12

// RenderPNG draws the layers, in order, onto a white image.
func (c *Canvas) RenderPNG(layers ...Layer) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(c.Width, c.Height)
	for _, l := range layers {
		if len(l.Shapes) == 0 {
			continue
		}
		r.Reset(c.Width, c.Height)
		r.DrawOp = draw.Over

		hw := c.lineWidth(l) / 2
		for _, line := range c.flatten(shape.ToPath(l.Shapes...)) {
			strokePolyline(r, line, hw)
		}

		g := uint8(math.Round(min(max(l.Gray, 0), 1) * 255))
		r.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: g}), image.Point{})
	}
	return img
}

// WritePNG renders the layers and encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer, layers ...Layer) error {
	return png.Encode(w, c.RenderPNG(layers...))
}

// strokePolyline adds the outline of a stroked polyline to r.
//
// Every segment becomes a rectangle and every vertex a small polygon.
// All pieces have the same orientation, so that overlaps add up instead of
// cancelling.
func strokePolyline(r *vector.Rasterizer, line polyline, hw float64) {
	for i, p := range line {
		addDot(r, p, hw)
		if i == 0 {
			continue
		}
		a := line[i-1]
		d := p.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / length)
		moveTo(r, a.Add(n))
		lineTo(r, p.Add(n))
		lineTo(r, p.Sub(n))
		lineTo(r, a.Sub(n))
		r.ClosePath()
	}
}

// addDot adds a regular polygon around p, traversed with decreasing angle
// to match the orientation of the segment rectangles.
func addDot(r *vector.Rasterizer, p vec.Vec2, radius float64) {
	for k := range dotSides {
		phi := -2 * math.Pi * float64(k) / dotSides
		q := vec.Vec2{X: p.X + radius*math.Cos(phi), Y: p.Y + radius*math.Sin(phi)}
		if k == 0 {
			moveTo(r, q)
		} else {
			lineTo(r, q)
		}
	}
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p vec.Vec2) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p vec.Vec2) {
	r.LineTo(float32(p.X), float32(p.Y))
}
