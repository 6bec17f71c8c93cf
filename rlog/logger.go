// Package rlog is a trimmed structured-logging wrapper around
// github.com/rs/zerolog, adapted from the reporting logger used
// elsewhere in the corpus. A gillespie.System only ever needs two
// levels -- Warn for the set_init unbound-species notice, Debug for a
// one-line-per-run trace -- so Info/Error/Fatal and the global-logger
// convenience functions are not carried over; a *rlog.Logger is always
// an optional, explicitly attached dependency, never a package global.
package rlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level selects the minimum severity a Logger emits.
type Level string

const (
	LevelDebug Level = "debug"
	LevelWarn  Level = "warn"
)

// Config configures a new Logger. A zero Config is valid: it logs at
// Warn level, as JSON, to stderr.
type Config struct {
	Level  Level
	Pretty bool
	Output io.Writer
}

// Logger emits structured warning and debug lines.
type Logger struct {
	logger zerolog.Logger
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	output := cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}
	zlog := zerolog.New(output).With().Timestamp().Logger()
	if cfg.Level == LevelDebug {
		zlog = zlog.Level(zerolog.DebugLevel)
	} else {
		zlog = zlog.Level(zerolog.WarnLevel)
	}
	return &Logger{logger: zlog}
}

// Warn logs a non-fatal warning, such as set_init naming a species no
// reaction references.
func (l *Logger) Warn(msg string, fields map[string]any) {
	event := l.logger.Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Debug logs a trace line, such as one Run call's parameters.
func (l *Logger) Debug(msg string, fields map[string]any) {
	event := l.logger.Debug()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
