// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{" 5 ", 5},
		{"1.5e3", 1500},
		{"-2", -2},
		{"0", 0},
		{"+7.", 7},
		{"2E-2", 0.02},
	} {
		assert.Equal(t, test.want, ParseResult(test.in), "ParseResult(%q)", test.in)
	}
	for _, in := range []string{"", "n/a", "NaN", "Inf", "-inf", "12ms", "1,000", "0x1p3", "0X10", "1_000", "1e", "--1"} {
		assert.True(t, math.IsNaN(ParseResult(in)), "ParseResult(%q) should be NaN", in)
	}
}

func TestRead(t *testing.T) {
	in := `benchmark,run,result,extra
A,baseline,10,x
A,lvn,5,y
B,baseline,n/a,z
`
	tab, err := Read(strings.NewReader(in), "test.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"benchmark", "run", "result", "extra"}, tab.Columns)
	require.Len(t, tab.Records, 3)

	assert.Equal(t, Record{Benchmark: "A", Run: "baseline", Result: 10, Raw: "10", Line: 2}, tab.Records[0])
	assert.Equal(t, Record{Benchmark: "A", Run: "lvn", Result: 5, Raw: "5", Line: 3}, tab.Records[1])
	assert.True(t, tab.Records[2].Missing())
	assert.Equal(t, "n/a", tab.Records[2].Raw)

	assert.Equal(t, []string{"baseline", "lvn"}, tab.Runs())
	missing := tab.Missing()
	require.Len(t, missing, 1)
	assert.Equal(t, "B", missing[0].Benchmark)
	assert.Equal(t, 4, missing[0].Line)
}

func TestReadColumnOrder(t *testing.T) {
	in := "result, run ,benchmark\n7,lvn,C\n"
	tab, err := Read(strings.NewReader(in), "")
	require.NoError(t, err)
	require.Len(t, tab.Records, 1)
	assert.Equal(t, "C", tab.Records[0].Benchmark)
	assert.Equal(t, "lvn", tab.Records[0].Run)
	assert.Equal(t, 7.0, tab.Records[0].Result)
}

func TestReadHeaderOnly(t *testing.T) {
	tab, err := Read(strings.NewReader("benchmark,run,result\n"), "")
	require.NoError(t, err)
	assert.Empty(t, tab.Records)
}

func TestReadErrors(t *testing.T) {
	for _, test := range []struct {
		name, in, want string
	}{
		{"empty", "", "x.csv:1: empty input, want header row"},
		{"nocolumn", "benchmark,run\nA,lvn\n", `x.csv:1: missing required column "result"`},
		{"fieldcount", "benchmark,run,result\nA,lvn\n", "x.csv:2: wrong number of fields"},
		{"quote", "benchmark,run,result\nA,l\"vn,1\n", "x.csv:2: bare \" in non-quoted-field"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(test.in), "x.csv")
			require.Error(t, err)
			assert.Equal(t, test.want, err.Error())
			var serr *SyntaxError
			assert.True(t, errors.As(err, &serr))
		})
	}

	_, err := Read(strings.NewReader("bench,run,result\n"), "x.csv")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.csv")
	require.NoError(t, os.WriteFile(path, []byte("benchmark,run,result\nA,baseline,3\n"), 0o666))

	tab, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, tab.Records, 1)

	_, err = ReadFile(filepath.Join(dir, "nonexistent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
