package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

// Attribute keys every semprobe record carries.
const (
	AppKey   = "app"
	RunIDKey = "run_id"
)

// SetupLogger returns the process logger for one semprobe run: text on
// stderr, JSON appended to c.LogFile, both tagged with a fresh run id.
// If the log file cannot be opened only stderr is written.
func SetupLogger(c Config, level slog.Level) (*slog.Logger, func() error) {
	runID := uuid.NewString()

	file, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger := NewLogger(os.Stderr, nil, level, runID)
		logger.Warn("log file unavailable, logging to stderr only", "file", c.LogFile, "error", err)
		return logger, func() error { return nil }
	}

	return NewLogger(os.Stderr, file, level, runID), file.Close
}

// NewLogger fans records out to stderr (text, no timestamp) and, when file
// is non-nil, to file as JSON.
func NewLogger(stderr, file io.Writer, level slog.Level, runID string) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level, ReplaceAttr: dropTime}),
	}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)).With(AppKey, "semprobe", RunIDKey, runID)
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
