// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// A Style holds every presentation setting of a speedup chart. The
// renderer reads nothing else, so two charts drawn with different
// Styles in the same process do not interfere.
type Style struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`

	// Typeface and Variant select a font from gonum's font cache,
	// for example "Liberation" and "Serif".
	Typeface string `yaml:"typeface"`
	Variant  string `yaml:"variant"`

	// TeX renders the title and axis labels as LaTeX. Benchmark
	// names are always rendered as plain text.
	TeX bool `yaml:"tex"`

	TitleSize  float64 `yaml:"title_size"`  // points
	LabelSize  float64 `yaml:"label_size"`  // points
	XTickSize  float64 `yaml:"xtick_size"`  // points
	YTickSize  float64 `yaml:"ytick_size"`  // points
	XTickAngle float64 `yaml:"xtick_angle"` // degrees, counterclockwise

	BarColor  string  `yaml:"bar_color"`  // hex, e.g. "#228b22"
	BarFill   float64 `yaml:"bar_fill"`   // fraction of each slot covered by its bar
	LineColor string  `yaml:"line_color"` // reference line, hex
	LineWidth float64 `yaml:"line_width"` // points
	LineDash  float64 `yaml:"line_dash"`  // dash length in points; 0 is solid
	Reference float64 `yaml:"reference"`  // y value of the reference line

	// Pad is the fraction of the speedup range added above and
	// below the data. MinSpan is the smallest y range drawn.
	Pad     float64 `yaml:"pad"`
	MinSpan float64 `yaml:"min_span"`

	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
	DPI    int     `yaml:"dpi"`
}

// DefaultStyle returns the standard chart style: a 10x5 inch, 300 DPI
// serif chart with forest green bars and a dashed red line at 1.0.
func DefaultStyle() Style {
	return Style{
		Title:  "Optimization chart using dynamic instruction count",
		XLabel: "Benchmark",
		YLabel: "Optimized to baseline ratio",

		Typeface: "Liberation",
		Variant:  "Serif",
		TeX:      true,

		TitleSize:  14,
		LabelSize:  12,
		XTickSize:  6,
		YTickSize:  10,
		XTickAngle: 45,

		BarColor:  "#228b22",
		BarFill:   0.8,
		LineColor: "#ff0000",
		LineWidth: 1,
		LineDash:  4,
		Reference: 1,

		Pad:     0.1,
		MinSpan: 0.1,

		Width:  10,
		Height: 5,
		DPI:    300,
	}
}

// LoadStyle reads a YAML style file. Settings absent from the file
// keep their DefaultStyle values.
func LoadStyle(path string) (Style, error) {
	sty := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return sty, err
	}
	if err := yaml.Unmarshal(data, &sty); err != nil {
		return sty, fmt.Errorf("%s: %w", path, err)
	}
	if err := sty.Validate(); err != nil {
		return sty, fmt.Errorf("%s: %w", path, err)
	}
	return sty, nil
}

// Validate reports the first setting in s that cannot be rendered.
func (s Style) Validate() error {
	if _, err := parseColor(s.BarColor); err != nil {
		return fmt.Errorf("bar_color: %w", err)
	}
	if _, err := parseColor(s.LineColor); err != nil {
		return fmt.Errorf("line_color: %w", err)
	}
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("size %gx%g must be positive", s.Width, s.Height)
	case s.DPI <= 0:
		return fmt.Errorf("dpi %d must be positive", s.DPI)
	case s.BarFill <= 0 || s.BarFill > 1:
		return fmt.Errorf("bar_fill %g must be in (0, 1]", s.BarFill)
	case s.Pad < 0:
		return fmt.Errorf("pad %g must not be negative", s.Pad)
	case s.MinSpan <= 0:
		return fmt.Errorf("min_span %g must be positive", s.MinSpan)
	}
	return nil
}

func (s Style) size() (w, h vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	return c, nil
}
