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

// Package preview draws lines, arcs and fillets as PNG or PDF images.
//
// Shapes are given in user space, with the y-axis pointing up. A [Canvas]
// maps user space to device space, where the origin is the top-left corner
// and one unit is one pixel (PNG) or one point (PDF).
package preview

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fillet/shape"
)

const (
	defaultFlatness  = 0.25
	defaultLineWidth = 1.5
)

// Layer is a group of shapes drawn with the same gray level.
type Layer struct {
	Shapes []shape.Shape

	// Gray is the stroke color, from 0 (black) to 1 (white).
	Gray float64

	// Width is the line width in device units. Zero selects the line width
	// of the canvas.
	Width float64
}

// Canvas describes the output image.
type Canvas struct {
	Width, Height int

	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// LineWidth is the default line width in device units.
	LineWidth float64

	// Flatness controls curve approximation accuracy in device units.
	Flatness float64
}

// NewCanvas returns a canvas of the given size, where the user space
// rectangle bounds is scaled to fit inside the image, leaving margin device
// units free on each side.
func NewCanvas(width, height int, bounds rect.Rect, margin float64) *Canvas {
	return &Canvas{
		Width:     width,
		Height:    height,
		CTM:       Fit(bounds, width, height, margin),
		LineWidth: defaultLineWidth,
		Flatness:  defaultFlatness,
	}
}

// Fit returns the matrix which maps bounds into a width×height image with
// the given margin, preserving the aspect ratio and flipping the y-axis.
// The mapped rectangle is centred in the image.
func Fit(bounds rect.Rect, width, height int, margin float64) matrix.Matrix {
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin
	bw := bounds.URx - bounds.LLx
	bh := bounds.URy - bounds.LLy

	s := 1.0
	switch {
	case bw > 0 && bh > 0:
		s = min(w/bw, h/bh)
	case bw > 0:
		s = w / bw
	case bh > 0:
		s = h / bh
	}
	if s <= 0 {
		s = 1
	}

	ox := margin + (w-s*bw)/2
	oy := margin + (h-s*bh)/2
	return matrix.Matrix{
		s, 0,
		0, -s,
		ox - s*bounds.LLx, float64(height) - oy + s*bounds.LLy,
	}
}

// toDevice maps a user space point to device space.
func (c *Canvas) toDevice(p vec.Vec2) vec.Vec2 {
	m := c.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (c *Canvas) lineWidth(l Layer) float64 {
	if l.Width > 0 {
		return l.Width
	}
	if c.LineWidth > 0 {
		return c.LineWidth
	}
	return defaultLineWidth
}

func (c *Canvas) flatness() float64 {
	if c.Flatness > 0 {
		return c.Flatness
	}
	return defaultFlatness
}
