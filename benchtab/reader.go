// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrNoColumn is wrapped by the error Read returns when the header
// lacks a required column.
var ErrNoColumn = errors.New("missing required column")

// A SyntaxError reports malformed input at a particular line of a
// benchmark table.
type SyntaxError struct {
	FileName string
	Line     int
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.FileName, e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ParseResult coerces a result field to a number. It returns NaN if s
// is not a finite decimal number. Surrounding space is ignored.
func ParseResult(s string) float64 {
	s = strings.TrimSpace(s)
	if !isDecimal(s) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// isDecimal reports whether s uses only the characters of a decimal
// float literal, ruling out the hex, underscore, and Inf/NaN forms that
// strconv also accepts.
func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9', c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return s != ""
}

// ReadFile reads the benchmark table in the named file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a benchmark table from r. fileName is used in error
// messages only.
func Read(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, errors.New("empty input, want header row")}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}

	t := &Table{Columns: make([]string, len(hdr))}
	index := make(map[string]int)
	for i, name := range hdr {
		name = strings.TrimSpace(name)
		t.Columns[i] = name
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	var cols [3]int
	for i, name := range []string{ColBenchmark, ColRun, ColResult} {
		pos, ok := index[name]
		if !ok {
			return nil, &SyntaxError{fileName, 1, fmt.Errorf("%w %q", ErrNoColumn, name)}
		}
		cols[i] = pos
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		line, _ := cr.FieldPos(0)
		raw := row[cols[2]]
		t.Records = append(t.Records, Record{
			Benchmark: row[cols[0]],
			Run:       row[cols[1]],
			Result:    ParseResult(raw),
			Raw:       raw,
			Line:      line,
		})
	}
	return t, nil
}

func csvError(fileName string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &SyntaxError{fileName, perr.Line, perr.Err}
	}
	return fmt.Errorf("%s: %w", fileName, err)
}
