/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide structured logger.
//
// Logs are always written to stderr so they never interleave with the
// diagnostic messages printed on stdout.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable consulted for the log level.
const EnvLogLevel = "LOG_LEVEL"

// ParseLogLevel converts a level name into a slog.Level.
// Unknown or empty names resolve to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromEnv returns the level named by LOG_LEVEL, or fallback when unset.
func LevelFromEnv(fallback slog.Level) slog.Level {
	if v := os.Getenv(EnvLogLevel); v != "" {
		return ParseLogLevel(v)
	}
	return fallback
}

// NewLogger builds a logger writing to w, tagged with module and version.
func NewLogger(w io.Writer, module, version string, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a stderr logger as the slog default.
func SetDefaultStructuredLogger(module, version string, level slog.Level, json bool) {
	slog.SetDefault(NewLogger(os.Stderr, module, version, level, json))
}
