// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Speedchart charts the speedup of an optimized run over a baseline run.
//
// Usage:
//
//	speedchart [-in benchmarks.csv] [-out benchmarks.png] [-baseline name] [-optimized name] [-style file.yaml] [-csv file]
//
// The input is a CSV file with a header row naming at least the
// columns benchmark, run, and result. For every benchmark measured in
// both the baseline run (default "baseline") and the optimized run
// (default "lvn"), speedchart computes the ratio baseline/optimized and
// draws one bar per benchmark, tallest first, with a dashed reference
// line at a ratio of 1. Ratios above the line are improvements.
//
// If a benchmark appears more than once in a run, its last row is
// used. Result values that are not numbers are treated as missing, and
// benchmarks missing a value, or measured in only one of the two runs,
// are left out of the chart. Each such case is reported as a warning.
//
// The chart is written as a 10x5 inch PNG at 300 DPI, replacing any
// existing file. The -style flag names a YAML file overriding any of
// the chart's presentation settings, for example:
//
//	title: Dead code elimination
//	bar_color: "#1f77b4"
//	tex: false
//
// The -csv flag additionally writes the ratio table, in chart order,
// to the named file, or to standard output if the name is "-".
//
// The log level is set by -log-level or $LOG_LEVEL and defaults to info.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/bril-tools/speedchart/benchtab"
	"github.com/bril-tools/speedchart/chart"
	"github.com/bril-tools/speedchart/internal/logging"
	"github.com/bril-tools/speedchart/speedup"
)

var exit = os.Exit // replaced during testing

// config holds the settings of one run of the command.
type config struct {
	in, out             string
	baseline, optimized string
	style               string
	csv                 string
	logLevel            string
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), "usage: speedchart [options]\n")
		fmt.Fprintf(fs.Output(), "options:\n")
		fs.PrintDefaults()
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := new(config)
	fs := flag.NewFlagSet("speedchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	fs.StringVar(&cfg.in, "in", "benchmarks.csv", "read benchmark results from `file`")
	fs.StringVar(&cfg.out, "out", "benchmarks.png", "write the chart to `file`")
	fs.StringVar(&cfg.baseline, "baseline", speedup.Baseline, "run `label` of the baseline measurements")
	fs.StringVar(&cfg.optimized, "optimized", speedup.Optimized, "run `label` of the optimized measurements")
	fs.StringVar(&cfg.style, "style", "", "read chart style overrides from YAML `file`")
	fs.StringVar(&cfg.csv, "csv", "", "also write the ratio table as CSV to `file` (- for stdout)")
	fs.StringVar(&cfg.logLevel, "log-level", "", "log `level`: debug, info, warn, error (default $LOG_LEVEL or info)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		exit(0)
		return
	} else if err != nil {
		exit(2)
		return
	}
	log, err := logging.New(logging.Level(cfg.logLevel), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "speedchart: %v\n", err)
		exit(2)
		return
	}
	defer log.Sync()

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Errorw("speedchart failed", "error", err)
		log.Sync()
		exit(1)
	}
}

// run loads cfg.in, compares the two runs, and writes the chart and,
// if requested, the ratio table.
func run(cfg *config, log *zap.SugaredLogger, stdout io.Writer) error {
	sty := chart.DefaultStyle()
	if cfg.style != "" {
		var err error
		if sty, err = chart.LoadStyle(cfg.style); err != nil {
			return err
		}
	}

	tab, err := benchtab.ReadFile(cfg.in)
	if err != nil {
		return err
	}
	for _, rec := range tab.Missing() {
		log.Warnw("result is not a number, treating as missing",
			"file", cfg.in, "line", rec.Line, "benchmark", rec.Benchmark, "run", rec.Run, "result", rec.Raw)
	}

	cmp := speedup.Compare(tab, cfg.baseline, cfg.optimized)
	for _, name := range cmp.Unmatched {
		log.Warnw("benchmark not measured in both runs, skipping", "benchmark", name)
	}
	for _, name := range cmp.Missing {
		log.Warnw("benchmark has a missing result, skipping", "benchmark", name)
	}
	for _, r := range cmp.NonFinite() {
		log.Warnw("speedup is not finite", "benchmark", r.Benchmark,
			cfg.baseline, r.Baseline, cfg.optimized, r.Optimized, "speedup", r.Speedup)
	}
	if len(cmp.Ratios) == 0 {
		log.Warnw("no benchmark measured in both runs", "baseline", cfg.baseline, "optimized", cfg.optimized, "runs", tab.Runs())
	}

	c, err := chart.New(cmp.Ratios, sty)
	if err != nil {
		return err
	}
	if err := c.Save(cfg.out); err != nil {
		return err
	}
	log.Infow("wrote chart", "file", cfg.out, "benchmarks", len(c.Ratios),
		"geomean", cmp.GeoMean(), "ymin", c.Lo, "ymax", c.Hi)

	if cfg.csv != "" {
		if err := writeCSV(cfg.csv, cmp, c.Ratios, stdout); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, cmp *speedup.Comparison, rs []speedup.Ratio, stdout io.Writer) error {
	if path == "-" {
		return cmp.WriteCSV(stdout, rs)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cmp.WriteCSV(f, rs); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
