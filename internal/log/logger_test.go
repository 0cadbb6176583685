package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, component string) *Logger {
	cfg := DefaultConfig()
	cfg.Component = component
	cfg.Handler = slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return New(cfg)
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, "loader")

	logger.Info("file parsed", FieldCount, 3)

	out := buf.String()
	if !strings.Contains(out, "component=loader") {
		t.Errorf("expected component field, got %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("expected count field, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, ComponentApp)

	scoped := logger.WithComponent(ComponentStorage)
	if scoped.Component() != ComponentStorage {
		t.Fatalf("expected %q, got %q", ComponentStorage, scoped.Component())
	}
	if logger.Component() != ComponentApp {
		t.Fatal("WithComponent must not mutate the parent logger")
	}

	scoped.Error("save failed", FieldError, "disk full")
	if out := buf.String(); !strings.Contains(out, "component=storage") {
		t.Errorf("expected storage component, got %q", out)
	}
}
