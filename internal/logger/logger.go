package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // human-readable console output
	File       string // rotating log file; empty writes to Output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Output     io.Writer // used when File is empty; defaults to stdout
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// New creates a structured logger. The terminal UI owns stdout, so the TUI
// logs to a rotating file; the mock API logs to stdout.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = cfg.Output
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		_ = os.MkdirAll(filepath.Dir(cfg.File), 0o755)
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out, closer = lj, lj
	}
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: cfg.File != ""}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
