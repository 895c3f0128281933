package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestInfoCarriesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-1")
	ctx = logg.WithFields(ctx, map[string]any{"path": "/api/auth/login"})
	logg.Info(ctx, "request.start")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not json: %v (%s)", err, buf.String())
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("expected request_id in entry, got %v", entry)
	}
	if entry["path"] != "/api/auth/login" {
		t.Fatalf("expected path in entry, got %v", entry)
	}
	if entry["service"] != "test" {
		t.Fatalf("expected service in entry, got %v", entry)
	}
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	logg.Error(context.Background(), "boom", errors.New("kaput"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not json: %v", err)
	}
	if entry["error"] != "kaput" {
		t.Fatalf("expected error field, got %v", entry)
	}
	if stack, ok := entry["stack"].(string); !ok || stack == "" {
		t.Fatalf("expected stack trace, got %v", entry["stack"])
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback for garbage, got %v", got)
	}
}
