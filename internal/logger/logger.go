// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// lms-automation application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain scoped loggers
// via GetChildLogger or FromContext.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/MKhiriev/lms-automation/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidLogLevel is returned when a level name is not recognised.
var ErrInvalidLogLevel = errors.New("invalid log level")

// levels maps upper-cased level names to zerolog levels. WARNING, CRITICAL
// and NOTSET are accepted next to the zerolog names; NOTSET enables every
// level.
var levels = map[string]zerolog.Level{
	"NOTSET":   zerolog.TraceLevel,
	"DEBUG":    zerolog.DebugLevel,
	"INFO":     zerolog.InfoLevel,
	"WARN":     zerolog.WarnLevel,
	"WARNING":  zerolog.WarnLevel,
	"ERROR":    zerolog.ErrorLevel,
	"CRITICAL": zerolog.FatalLevel,
	"FATAL":    zerolog.FatalLevel,
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// ParseLevel converts a case-insensitive level name into a zerolog level.
// An empty name resolves to [config.DefaultLogLevel]. Names are not trimmed.
// Unknown names return an error wrapping [ErrInvalidLogLevel] instead of
// falling back to a default.
func ParseLevel(name string) (zerolog.Level, error) {
	level, ok := levels[levelName(name)]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}

	return level, nil
}

// levelName upper-cases name, substituting the default for an empty one.
func levelName(name string) string {
	if name == "" {
		return config.DefaultLogLevel
	}

	return strings.ToUpper(name)
}

// NewLogger constructs a *Logger for the given role label writing to
// os.Stdout. See [NewLoggerWithWriter].
func NewLogger(role string, cfg config.Log) (*Logger, error) {
	return NewLoggerWithWriter(os.Stdout, role, cfg)
}

// NewLoggerWithWriter constructs a *Logger for the given role label
// (e.g. "driver", "backup") that writes to w.
//
// The logger is configured with:
//   - the level named by cfg.Level (see [ParseLevel]);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is JSON unless cfg.Format is "console", in which case a
// human-readable zerolog.ConsoleWriter is used.
func NewLoggerWithWriter(w io.Writer, role string, cfg config.Log) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	l := &Logger{logger}
	l.Info().Msgf("logging is set to %s level", levelName(cfg.Level))

	return l, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext returns a copy of ctx carrying the receiver, retrievable with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
