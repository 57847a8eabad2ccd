// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the console logger used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv names the environment variable consulted by Level.
const LevelEnv = "LOG_LEVEL"

// Level returns flagValue if set, else $LOG_LEVEL, else "info".
func Level(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := os.LookupEnv(LevelEnv); ok && v != "" {
		return v
	}
	return "info"
}

// New returns a console logger writing to w at the given level
// ("debug", "info", "warn", "error"). A nil w means stderr.
func New(level string, w io.Writer) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:     "M",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core).Sugar(), nil
}
