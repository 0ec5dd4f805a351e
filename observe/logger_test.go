package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to parse log line as JSON: %v\nLine: %s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

// TestLogger_IncludesPluginFields verifies plugin fields are present in log output.
func TestLogger_IncludesPluginFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf).WithPlugin(PluginMeta{
		Name:    "check_value",
		Label:   "temp",
		Version: "1.2.0",
	})

	logger.Info(context.Background(), "test message")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	entry := entries[0]

	want := map[string]string{
		"plugin.name":    "check_value",
		"check.label":    "temp",
		"plugin.version": "1.2.0",
		"msg":            "test message",
		"level":          "info",
	}
	for k, v := range want {
		if got, _ := entry[k].(string); got != v {
			t.Errorf("%s = %v, want %q", k, entry[k], v)
		}
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

// TestLogger_LevelFiltering verifies messages below the level are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)
	ctx := context.Background()

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(entries))
	}
	if entries[0]["msg"] != "warn" || entries[1]["msg"] != "error" {
		t.Errorf("unexpected messages: %v, %v", entries[0]["msg"], entries[1]["msg"])
	}
}

// TestLogger_Redaction verifies sensitive fields are redacted.
func TestLogger_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	logger.Info(context.Background(), "run",
		Field{Key: "argv", Value: []string{"--password", "hunter2"}},
		Field{Key: "community", Value: "public"},
		Field{Key: "path", Value: "/var/lib/state"},
	)

	entry := decodeLines(t, &buf)[0]
	if entry["argv"] != "[REDACTED]" {
		t.Errorf("argv = %v, want redacted", entry["argv"])
	}
	if entry["community"] != "[REDACTED]" {
		t.Errorf("community = %v, want redacted", entry["community"])
	}
	if entry["path"] != "/var/lib/state" {
		t.Errorf("path = %v, want unredacted", entry["path"])
	}
}

// TestLogger_ErrorValues verifies error fields are rendered as strings.
func TestLogger_ErrorValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Error(context.Background(), "failed", Field{Key: "error", Value: errors.New("disk full")})

	entry := decodeLines(t, &buf)[0]
	if entry["error"] != "disk full" {
		t.Errorf("error = %v, want %q", entry["error"], "disk full")
	}
}

// TestLogger_ConcurrentDerived verifies derived loggers never interleave lines.
func TestLogger_ConcurrentDerived(t *testing.T) {
	var buf bytes.Buffer
	base := NewLoggerWithWriter("info", &buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := base.WithPlugin(PluginMeta{Name: "check_value"})
			for j := 0; j < 50; j++ {
				l.Info(context.Background(), "tick", Field{Key: "n", Value: j})
			}
		}()
	}
	wg.Wait()

	if got := len(decodeLines(t, &buf)); got != 400 {
		t.Errorf("got %d lines, want 400", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
