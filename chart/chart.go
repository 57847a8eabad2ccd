// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders speedup ratios as a bar chart.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/bril-tools/speedchart/speedup"
)

// A Chart is a speedup bar chart ready to be written.
type Chart struct {
	Plot  *plot.Plot
	Style Style

	// Ratios are the plotted ratios, in bar order.
	Ratios []speedup.Ratio

	// Lo and Hi are the y axis bounds.
	Lo, Hi float64

	// Bars is nil if there are no ratios.
	Bars *plotter.BarChart
	Line *plotter.Function
}

// New lays out a bar chart of rs in decreasing order of speedup, one
// bar per benchmark, with a reference line at sty.Reference.
//
// The y axis spans the finite speedups plus padding. A ratio of +Inf
// is drawn to the top of the axis, -Inf to the bottom, and NaN as an
// empty bar. rs is not modified.
func New(rs []speedup.Ratio, sty Style) (*Chart, error) {
	if err := sty.Validate(); err != nil {
		return nil, err
	}
	barColor, _ := parseColor(sty.BarColor)
	lineColor, _ := parseColor(sty.LineColor)

	sorted := append([]speedup.Ratio(nil), rs...)
	speedup.SortDescending(sorted)
	lo, hi := speedup.Bounds(sorted, sty.Pad, sty.MinSpan)

	plain := text.Plain{Fonts: font.DefaultCache}
	var labels text.Handler = plain
	if sty.TeX {
		labels = text.Latex{Fonts: font.DefaultCache}
	}
	fnt := font.Font{Typeface: font.Typeface(sty.Typeface), Variant: font.Variant(sty.Variant)}
	if !font.DefaultCache.Has(fnt) {
		return nil, fmt.Errorf("font %s %s is not available", sty.Typeface, sty.Variant)
	}
	styled := func(ts *text.Style, h text.Handler, size float64) {
		ts.Handler = h
		ts.Font = fnt
		ts.Font.Size = vg.Points(size)
	}

	pl := plot.New()
	pl.Title.Text = sty.Title
	styled(&pl.Title.TextStyle, labels, sty.TitleSize)
	pl.X.Label.Text = sty.XLabel
	styled(&pl.X.Label.TextStyle, labels, sty.LabelSize)
	pl.Y.Label.Text = sty.YLabel
	styled(&pl.Y.Label.TextStyle, labels, sty.LabelSize)
	styled(&pl.X.Tick.Label, plain, sty.XTickSize)
	styled(&pl.Y.Tick.Label, plain, sty.YTickSize)

	var bars *plotter.BarChart
	if len(sorted) > 0 {
		names := make([]string, len(sorted))
		values := make(plotter.Values, len(sorted))
		for i, r := range sorted {
			names[i] = r.Benchmark
			values[i] = barHeight(r.Speedup, lo, hi)
		}

		w, _ := sty.size()
		width := vg.Length(sty.BarFill) * (w - vg.Inch) / vg.Length(len(sorted))
		if width < vg.Points(0.5) {
			width = vg.Points(0.5)
		}
		var err error
		bars, err = plotter.NewBarChart(values, width)
		if err != nil {
			return nil, err
		}
		bars.Color = barColor
		bars.LineStyle.Width = 0
		pl.Add(bars)
		pl.NominalX(names...)
	} else {
		pl.HideX()
		pl.X.Min, pl.X.Max = -0.5, 0.5
	}

	pl.X.Tick.Label.Rotation = sty.XTickAngle * math.Pi / 180
	pl.X.Tick.Label.XAlign = draw.XRight
	pl.X.Tick.Label.YAlign = draw.YTop

	ref := sty.Reference
	line := plotter.NewFunction(func(float64) float64 { return ref })
	line.Color = lineColor
	line.Width = vg.Points(sty.LineWidth)
	if sty.LineDash > 0 {
		line.Dashes = []vg.Length{vg.Points(sty.LineDash), vg.Points(sty.LineDash / 2)}
	}
	pl.Add(line)

	// Set after Add, which widens the axes to the bar bases at 0.
	// The x range covers whole bar slots so the reference line
	// spans the plot.
	pl.Y.Min, pl.Y.Max = lo, hi
	if len(sorted) > 0 {
		pl.X.Min, pl.X.Max = -0.5, float64(len(sorted))-0.5
	}

	return &Chart{Plot: pl, Style: sty, Ratios: sorted, Lo: lo, Hi: hi, Bars: bars, Line: line}, nil
}

// barHeight maps a speedup to a drawable bar height.
func barHeight(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return hi
	case math.IsInf(v, -1):
		return lo
	}
	return v
}

// WritePNG renders c as a PNG image to w.
func (c *Chart) WritePNG(w io.Writer) (err error) {
	// Text handlers panic on text they cannot lay out.
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("rendering chart: %v", e)
		}
	}()

	width, height := c.Style.size()
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(c.Style.DPI),
		vgimg.UseBackgroundColor(color.White),
	)}
	c.Plot.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}

// Save writes c as a PNG image to the named file, replacing any
// existing file.
func (c *Chart) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
