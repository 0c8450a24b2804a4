// Copyright 2025 go-sse2 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// logFormatEnv selects the log encoding: "json" or "text" (default).
const logFormatEnv = "SSE2GEN_LOG"

// Logger wraps slog.Logger with generator-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing to w. The encoding follows
// SSE2GEN_LOG; verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv(logFormatEnv), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithTarget tags subsequent records with the generation target.
func (l *Logger) WithTarget(target string) *Logger {
	return &Logger{Logger: l.Logger.With("target", target)}
}

// LogWrite records the outcome of writing one generated file.
func (l *Logger) LogWrite(path string, size int, err error) {
	if err != nil {
		l.Error("write failed", "path", path, "error", err)
		return
	}
	l.Info("generated", "path", path, "bytes", size)
}
