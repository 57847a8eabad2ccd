// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads tables of benchmark results.
//
// A benchmark table is a CSV file with a header row naming at least
// the columns "benchmark", "run", and "result". Each data row records
// one measurement of one benchmark under one run label, for example:
//
//	benchmark,run,result
//	bin-search,baseline,1432
//	bin-search,lvn,1189
//
// Other columns are permitted and ignored. Result values are coerced
// to float64; a value that does not parse as a finite number is
// recorded as NaN rather than rejected.
package benchtab

import "math"

// Required column names.
const (
	ColBenchmark = "benchmark"
	ColRun       = "run"
	ColResult    = "result"
)

// A Record is one row of a benchmark table.
type Record struct {
	Benchmark string
	Run       string

	// Result is the coerced measurement, or NaN if Raw did not
	// parse as a finite number.
	Result float64

	// Raw is the result field as it appeared in the input.
	Raw string

	// Line is the 1-based line number of the row in its input.
	Line int
}

// Missing reports whether r's result failed to parse.
func (r Record) Missing() bool {
	return math.IsNaN(r.Result)
}

// A Table is a sequence of Records in input order.
type Table struct {
	// Columns is the header row, with surrounding space trimmed.
	Columns []string

	Records []Record
}

// Runs returns the distinct run labels in t, in order of first
// appearance.
func (t *Table) Runs() []string {
	var runs []string
	seen := make(map[string]bool)
	for _, rec := range t.Records {
		if !seen[rec.Run] {
			seen[rec.Run] = true
			runs = append(runs, rec.Run)
		}
	}
	return runs
}

// Missing returns the records whose result could not be coerced to a
// number.
func (t *Table) Missing() []Record {
	var out []Record
	for _, rec := range t.Records {
		if rec.Missing() {
			out = append(out, rec)
		}
	}
	return out
}
