// Package logging builds the application's zerolog loggers.
//
// The CLI logs to stderr with a console writer when attached to a terminal
// and falls back to JSON otherwise. An optional log file receives a second
// copy of every event.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string

	// File, when non-empty, receives a JSON copy of every event in addition
	// to stderr.
	File string

	// Console forces the human-readable console format. When false the
	// format is chosen from terminal detection on stderr.
	Console bool
}

// Result holds the constructed logger plus the file handle that must be
// closed when the process is done logging.
type Result struct {
	Logger  zerolog.Logger
	logFile *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.logFile == nil {
		return nil
	}
	return r.logFile.Close()
}

// New builds a logger from cfg. Opening the log file is best-effort: on
// failure the logger still works, it just writes to stderr only, and the
// failure is reported on the returned logger itself.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var console io.Writer = os.Stderr
	if cfg.Console || term.IsTerminal(int(os.Stderr.Fd())) {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	writers := []io.Writer{console}
	result := Result{}

	var fileErr error
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			fileErr = err
		} else {
			result.logFile = logFile
			writers = append(writers, logFile)
		}
	}

	result.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	if fileErr != nil {
		result.Logger.Warn().Err(fileErr).Str("file", cfg.File).
			Msg("could not open log file, logging to stderr only")
	}

	return result
}

// Component returns a child logger tagged with a component name, the
// convention every package in this repository logs under.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
