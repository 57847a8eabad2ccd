// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package speedup compares two runs of a benchmark table.
//
// For every benchmark measured in both a baseline run and an optimized
// run, a comparison records the ratio baseline/optimized. A ratio
// greater than 1 means the optimized run measured less than the
// baseline, that is, it improved.
//
// Within a run, a benchmark that appears more than once takes the
// value of its last row. Benchmarks that appear in only one run, or
// whose effective value in either run is missing, are excluded from
// the ratios and listed separately so callers can report them.
//
// Ratios are computed with ordinary IEEE arithmetic, so a zero
// optimized value yields an infinite or NaN speedup. Such ratios are
// retained.
package speedup

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/bril-tools/speedchart/benchtab"
)

// Default run labels.
const (
	Baseline  = "baseline"
	Optimized = "lvn"
)

// A Ratio is the comparison of one benchmark between two runs.
type Ratio struct {
	Benchmark string
	Baseline  float64
	Optimized float64
	Speedup   float64 // Baseline / Optimized
}

// Finite reports whether r's speedup is a finite number.
func (r Ratio) Finite() bool {
	return !math.IsNaN(r.Speedup) && !math.IsInf(r.Speedup, 0)
}

// An Index maps benchmark names to the result of one run.
type Index struct {
	Run string

	// Names lists the benchmarks in order of first appearance.
	Names []string

	// Values holds the last result recorded for each benchmark.
	Values map[string]float64
}

// NewIndex builds the index of run in t. Later rows for the same
// benchmark overwrite earlier ones.
func NewIndex(t *benchtab.Table, run string) *Index {
	idx := &Index{Run: run, Values: make(map[string]float64)}
	for _, rec := range t.Records {
		if rec.Run != run {
			continue
		}
		if _, ok := idx.Values[rec.Benchmark]; !ok {
			idx.Names = append(idx.Names, rec.Benchmark)
		}
		idx.Values[rec.Benchmark] = rec.Result
	}
	return idx
}

// A Comparison is the inner join of two run indexes.
type Comparison struct {
	Baseline, Optimized string

	// Ratios has one entry per benchmark with a value in both
	// runs, in the baseline run's order of first appearance.
	Ratios []Ratio

	// Unmatched lists benchmarks present in only one of the two
	// runs, baseline's first.
	Unmatched []string

	// Missing lists benchmarks present in both runs whose
	// effective value in at least one run could not be parsed.
	Missing []string
}

// Compare joins the baseline and optimized runs of t on benchmark name.
func Compare(t *benchtab.Table, baseline, optimized string) *Comparison {
	base := NewIndex(t, baseline)
	opt := NewIndex(t, optimized)

	c := &Comparison{Baseline: baseline, Optimized: optimized}
	for _, name := range base.Names {
		b := base.Values[name]
		o, ok := opt.Values[name]
		switch {
		case !ok:
			c.Unmatched = append(c.Unmatched, name)
		case math.IsNaN(b) || math.IsNaN(o):
			c.Missing = append(c.Missing, name)
		default:
			c.Ratios = append(c.Ratios, Ratio{name, b, o, b / o})
		}
	}
	for _, name := range opt.Names {
		if _, ok := base.Values[name]; !ok {
			c.Unmatched = append(c.Unmatched, name)
		}
	}
	return c
}

// Speedups returns the speedup column of c.Ratios.
func (c *Comparison) Speedups() []float64 {
	xs := make([]float64, len(c.Ratios))
	for i, r := range c.Ratios {
		xs[i] = r.Speedup
	}
	return xs
}

// NonFinite returns the ratios whose speedup is infinite or NaN.
func (c *Comparison) NonFinite() []Ratio {
	var out []Ratio
	for _, r := range c.Ratios {
		if !r.Finite() {
			out = append(out, r)
		}
	}
	return out
}

// GeoMean returns the geometric mean of the finite, positive speedups
// in c, or NaN if there are none.
func (c *Comparison) GeoMean() float64 {
	var xs []float64
	for _, r := range c.Ratios {
		if r.Finite() && r.Speedup > 0 {
			xs = append(xs, r.Speedup)
		}
	}
	if len(xs) == 0 {
		return math.NaN()
	}
	return stats.GeoMean(xs)
}
