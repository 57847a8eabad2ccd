// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speedup

import (
	"math"
	"sort"
)

// A LessFunc compares two ratios.
type LessFunc func(a, b Ratio) bool

// ByName orders ratios by benchmark name.
func ByName(a, b Ratio) bool {
	return a.Benchmark < b.Benchmark
}

// BySpeedup orders ratios by ascending speedup. NaN sorts before every
// other value, so reversing it leaves NaN last.
func BySpeedup(a, b Ratio) bool {
	if math.IsNaN(a.Speedup) {
		return !math.IsNaN(b.Speedup)
	}
	return a.Speedup < b.Speedup
}

// Reverse returns a LessFunc that orders in the opposite direction of
// less. Unlike !less(a, b), equal elements remain equal, so a stable
// sort keeps their input order.
func Reverse(less LessFunc) LessFunc {
	return func(a, b Ratio) bool { return less(b, a) }
}

// Sort sorts rs in place by less. The sort is stable.
func Sort(rs []Ratio, less LessFunc) {
	sort.SliceStable(rs, func(i, j int) bool { return less(rs[i], rs[j]) })
}

// SortDescending sorts rs by decreasing speedup, with +Inf first and
// NaN last. Ties keep their input order.
func SortDescending(rs []Ratio) {
	Sort(rs, Reverse(BySpeedup))
}
