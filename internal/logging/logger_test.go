package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"p2mark/internal/config"
	"p2mark/internal/logging"
)

func newBufferLogger(t *testing.T, format, level string) (*bytes.Buffer, func(string, ...any)) {
	t.Helper()
	var buf bytes.Buffer
	logger, closer, err := logging.New(logging.Options{Format: format, Level: level, Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { _ = closer.Close() })
	return &buf, logger.Info
}

func TestConsoleLoggerLiftsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "xmp").Info("sidecar written",
		logging.String(logging.FieldSidecar, "A 1.XMP"),
		logging.Int(logging.FieldMarkerCount, 2),
	)

	line := buf.String()
	if !strings.Contains(line, " INFO xmp: sidecar written ") {
		t.Fatalf("expected component before message, got %q", line)
	}
	if !strings.Contains(line, `sidecar="A 1.XMP"`) || !strings.Contains(line, "markers=2") {
		t.Fatalf("expected quoted fields, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not repeat as a field: %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information at info level, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	buf, info := newBufferLogger(t, "console", "debug")
	info("with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information at debug level, got %q", buf.String())
	}
}

func TestDefaultLevelIsWarn(t *testing.T) {
	buf, info := newBufferLogger(t, "console", "")
	info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at default level, got %q", buf.String())
	}
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("clip listed", logging.String(logging.FieldClip, "A.XML"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "info" || payload["msg"] != "clip listed" || payload["clip"] != "A.XML" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
}

func TestNewRejectsUnknownFormatAndLevel(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(t.TempDir(), "state")
	cfg.Logging.File = true
	cfg.Logging.Level = "error"

	logger, closer, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Error("disk full", logging.Error(errors.New("no space left on device")))
	if err := closer.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(cfg.Paths.StateDir, logging.LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `error="no space left on device"`) {
		t.Fatalf("expected error in log file, got %q", content)
	}
}

func TestWarnWithContextFillsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "sidecar skipped", "sidecar_conflict",
		logging.String(logging.FieldErrorHint, "remove existing markers"),
	)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload[logging.FieldEventType] != "sidecar_conflict" {
		t.Fatalf("event_type = %v", payload[logging.FieldEventType])
	}
	if payload[logging.FieldErrorHint] != "remove existing markers" {
		t.Fatalf("error_hint overwritten: %v", payload[logging.FieldErrorHint])
	}
	if payload[logging.FieldImpact] == nil {
		t.Fatalf("expected default impact, got %v", payload)
	}
}

func TestNopLoggerIsSilent(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 12) {
		t.Fatal("nop logger should not be enabled at any level")
	}
	logging.WarnWithContext(nil, "ignored", "none")
}
