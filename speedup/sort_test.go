// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speedup

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(rs []Ratio) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Benchmark
	}
	return out
}

func TestSortDescending(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	rs := []Ratio{
		{Benchmark: "nan1", Speedup: nan},
		{Benchmark: "lo", Speedup: 0.5},
		{Benchmark: "tie1", Speedup: 1.25},
		{Benchmark: "ninf", Speedup: -inf},
		{Benchmark: "inf", Speedup: inf},
		{Benchmark: "hi", Speedup: 3},
		{Benchmark: "tie2", Speedup: 1.25},
		{Benchmark: "nan2", Speedup: nan},
		{Benchmark: "tie3", Speedup: 1.25},
	}
	SortDescending(rs)
	assert.Equal(t, []string{"inf", "hi", "tie1", "tie2", "tie3", "lo", "ninf", "nan1", "nan2"}, names(rs))
}

func TestSortDescendingRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rs := make([]Ratio, 200)
	for i := range rs {
		// Few distinct values so ties are common.
		rs[i] = Ratio{Benchmark: string(rune('a' + i%26)), Speedup: float64(rng.Intn(8)) / 4}
	}
	orig := append([]Ratio(nil), rs...)
	SortDescending(rs)

	for i := 1; i < len(rs); i++ {
		require.GreaterOrEqual(t, rs[i-1].Speedup, rs[i].Speedup, "position %d", i)
	}

	// Stability: elements with equal speedup keep their input order.
	var want []Ratio
	for _, v := range []float64{1.75, 1.5, 1.25, 1, 0.75, 0.5, 0.25, 0} {
		for _, r := range orig {
			if r.Speedup == v {
				want = append(want, r)
			}
		}
	}
	assert.Equal(t, want, rs)
}

func TestSortByName(t *testing.T) {
	rs := []Ratio{{Benchmark: "c"}, {Benchmark: "a"}, {Benchmark: "b"}}
	Sort(rs, ByName)
	assert.True(t, sort.StringsAreSorted(names(rs)))
	Sort(rs, Reverse(ByName))
	assert.Equal(t, []string{"c", "b", "a"}, names(rs))
}

func TestBounds(t *testing.T) {
	for _, test := range []struct {
		name   string
		vals   []float64
		lo, hi float64
	}{
		{"padded", []float64{1, 2, 3}, 0.8, 3.2},
		{"single", []float64{2}, 1.95, 2.05},
		{"equal", []float64{1.5, 1.5, 1.5}, 1.45, 1.55},
		{"nonfinite", []float64{math.Inf(1), 1, math.NaN(), 2, math.Inf(-1)}, 0.9, 2.1},
		{"allnonfinite", []float64{math.Inf(1), math.NaN()}, 0, 2},
		{"empty", nil, 0, 2},
	} {
		t.Run(test.name, func(t *testing.T) {
			var rs []Ratio
			for _, v := range test.vals {
				rs = append(rs, Ratio{Speedup: v})
			}
			lo, hi := Bounds(rs, 0.1, 0.1)
			assert.InDelta(t, test.lo, lo, 1e-12)
			assert.InDelta(t, test.hi, hi, 1e-12)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	c := &Comparison{Baseline: "baseline", Optimized: "lvn"}
	rs := []Ratio{
		{"bin-search", 10, 4, 2.5},
		{"mat-mul", 1990407, 1473008, 1.351253353681718},
		{"tiny", 1e-7, 1, 1e-7},
		{"fib, recursive", 3, 0, math.Inf(1)},
		{"zero", 0, 0, math.NaN()},
	}
	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf, rs))
	want := `benchmark,baseline,lvn,speedup
bin-search,10,4,2.5
mat-mul,1990407,1473008,1.351253353681718
tiny,0.0000001,1,0.0000001
"fib, recursive",3,0,+Inf
zero,0,0,NaN
`
	assert.Equal(t, want, buf.String())
}
