// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speedup

import "github.com/aclements/go-moremath/stats"

// Bounds returns an axis range covering the finite speedups in rs.
//
// The range extends pad*(max-min) beyond the extreme values on each
// side. If the result spans less than minSpan, it is widened about its
// center to exactly minSpan. Infinite and NaN speedups are ignored; if
// no speedup is finite, Bounds returns [0, 2], centered on a ratio of
// 1.
func Bounds(rs []Ratio, pad, minSpan float64) (lo, hi float64) {
	var xs []float64
	for _, r := range rs {
		if r.Finite() {
			xs = append(xs, r.Speedup)
		}
	}
	if len(xs) == 0 {
		return 0, 2
	}
	min, max := stats.Bounds(xs)
	d := pad * (max - min)
	lo, hi = min-d, max+d
	if hi-lo < minSpan {
		mid := lo + (hi-lo)/2
		lo, hi = mid-minSpan/2, mid+minSpan/2
	}
	return lo, hi
}
