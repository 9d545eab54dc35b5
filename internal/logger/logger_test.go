package logger

import (
	"context"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"garbage", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewSelectsBackend(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Backend = "zap"
	if _, ok := New(cfg).(*zapLogger); !ok {
		t.Error("Expected a zap-backed logger")
	}

	cfg.Backend = "slog"
	if _, ok := New(cfg).(*slogLogger); !ok {
		t.Error("Expected a slog-backed logger")
	}

	// Unknown backends fall back to slog
	cfg.Backend = "zerolog"
	if _, ok := New(cfg).(*slogLogger); !ok {
		t.Error("Expected fallback to slog for an unknown backend")
	}
}

func TestContextFieldPropagation(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	ctx = WithUserID(ctx, "user-456")

	fields := extractContextFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("Expected 2 context fields, got %d", len(fields))
	}

	values := make(map[string]any)
	for _, f := range fields {
		values[f.Key] = f.Value
	}
	if values["request_id"] != "req-123" {
		t.Errorf("Expected request_id req-123, got %v", values["request_id"])
	}
	if values["user_id"] != "user-456" {
		t.Errorf("Expected user_id user-456, got %v", values["user_id"])
	}
}

func TestErrField(t *testing.T) {
	if f := Err(nil); f.Key != "error" || f.Value != nil {
		t.Errorf("Expected nil error field, got %+v", f)
	}
}

func TestLevelFiltering(t *testing.T) {
	for _, backend := range []string{"slog", "zap"} {
		l := New(Config{Level: LevelWarn, Format: "json", Backend: backend})
		if l.Level() != LevelWarn {
			t.Errorf("%s: expected warn level, got %v", backend, l.Level())
		}
	}
}
