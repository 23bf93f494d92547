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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fillet/shape"
)

// WritePDF writes the layers as a single page PDF file.
// One device unit corresponds to one PDF point.
func (c *Canvas) WritePDF(fileName string, layers ...Layer) error {
	w, h := float64(c.Width), float64(c.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left, device space has the origin top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for _, l := range layers {
		if len(l.Shapes) == 0 {
			continue
		}
		page.SetStrokeColor(color.DeviceGray(min(max(l.Gray, 0), 1)))
		page.SetLineWidth(c.lineWidth(l))

		// Curves are mapped to device space point by point, so that the line
		// width is not affected by the scale of the CTM.
		for cmd, pts := range shape.ToPath(l.Shapes...).Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				p := c.toDevice(pts[0])
				page.MoveTo(p.X, p.Y)
			case path.CmdLineTo:
				p := c.toDevice(pts[0])
				page.LineTo(p.X, p.Y)
			case path.CmdCubeTo:
				p1, p2, p3 := c.toDevice(pts[0]), c.toDevice(pts[1]), c.toDevice(pts[2])
				page.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}
