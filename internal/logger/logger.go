// Package logger provides structured logging for Hifumi. It uses Go's slog
// package with configurable level and format, optionally fanning out to a
// log file alongside stdout.
package logger

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New creates a slog Logger writing to stdout in the given format ("text" or
// "json"). When logFile is non-empty the logger additionally appends JSON
// records to that file. The returned logger is also installed as the slog
// default.
func New(levelStr, format, logFile string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(levelStr),
	}

	var stdout slog.Handler
	if format == "json" {
		stdout = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		stdout = slog.NewTextHandler(os.Stdout, opts)
	}

	handler := stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		handler = slogmulti.Fanout(stdout, slog.NewJSONHandler(f, opts))
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, nil
}

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
