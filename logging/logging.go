package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New builds a text logger. With an empty path it writes to fallback, and a
// nil fallback discards everything. The returned close func is never nil.
func New(path string, level slog.Level, fallback io.Writer) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	if path == "" {
		if fallback == nil {
			return slog.New(slog.DiscardHandler), noop, nil
		}
		return newLogger(fallback, level), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, err
	}
	return newLogger(file, level), file.Close, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
