package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "seating.log")

	logger, closeFn, err := New(path, slog.LevelInfo, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	logger.Debug("hidden")
	logger.Info("seat booked", "seat", "3B")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "seat booked") || !strings.Contains(out, "seat=3B") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug line to be filtered, got %q", out)
	}
}

func TestNew_Fallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New("", slog.LevelDebug, &buf)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer closeFn()

	logger.Debug("grid initialized")
	if !strings.Contains(buf.String(), "grid initialized") {
		t.Fatalf("expected fallback output, got %q", buf.String())
	}
}

func TestNew_Discard(t *testing.T) {
	logger, closeFn, err := New("", slog.LevelInfo, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if logger == nil || closeFn == nil {
		t.Fatal("expected logger and close func")
	}
	logger.Info("nothing to see")
}
