// SPDX-License-Identifier: MIT

package graphing

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Preview canvas size.
const (
	PreviewWidth  = 6 * vg.Inch
	PreviewHeight = 4 * vg.Inch
)

var curveColor = color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}

// RenderPNG samples expr over xr and writes a PNG preview clipped to yr.
//
// Implementation:
//   - Stage 1: Sample(expr, xr, DefaultSamples).
//   - Stage 2: one plotter.Line per series over a grid, axes fixed to xr × yr.
//   - Stage 3: encode through plot.WriterTo.
func RenderPNG(w io.Writer, expr string, xr, yr Range) error {
	if err := yr.Validate(); err != nil {
		return err
	}
	series, err := Sample(expr, xr, DefaultSamples)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "y = " + expr
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = xr.Min, xr.Max
	p.Y.Min, p.Y.Max = yr.Min, yr.Max
	p.Add(plotter.NewGrid())

	for _, s := range series {
		xys := make(plotter.XYs, len(s))
		for i, pt := range s {
			xys[i].X, xys[i].Y = pt.X, pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("graphing: line: %w", err)
		}
		line.LineStyle.Color = curveColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
	}

	wt, err := p.WriterTo(PreviewWidth, PreviewHeight, "png")
	if err != nil {
		return fmt.Errorf("graphing: encode: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("graphing: write: %w", err)
	}

	return nil
}
