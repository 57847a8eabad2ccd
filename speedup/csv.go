// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speedup

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes rs as a CSV table with columns benchmark, the two
// run labels of c, and speedup. Rows appear in the order of rs.
//
// Numbers are written in plain decimal notation with the fewest digits
// that represent them exactly.
func (c *Comparison) WriteCSV(out io.Writer, rs []Ratio) error {
	tab := make([][]string, 0, 1+len(rs))
	tab = append(tab, []string{"benchmark", c.Baseline, c.Optimized, "speedup"})
	for _, r := range rs {
		tab = append(tab, []string{r.Benchmark, strof(r.Baseline), strof(r.Optimized), strof(r.Speedup)})
	}
	csvw := csv.NewWriter(out)
	// WriteAll flushes and reports any write error.
	return csvw.WriteAll(tab)
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
