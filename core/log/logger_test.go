// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, level
//              filtering and output formatting.
// Version: v0.1.0
// Created: 2025-11-18

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("name = %q, want test-logger", logger.name)
	}
}

func TestWithLevelReturnsClone(t *testing.T) {
	logger := New()
	clone := logger.WithLevel(LevelDebug)

	if clone == logger {
		t.Error("WithLevel() should return a new instance")
	}
	if clone.GetLevel() != LevelDebug {
		t.Errorf("clone level = %v, want %v", clone.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify the original logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Debug("filtered out")
	logger.Info("also filtered")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("wrote %d lines, want 1: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "kept") {
		t.Errorf("output = %q, want warn message", lines[0])
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf}).
		WithField("component", "engine").
		WithFields(Fields{"language": "ja"})

	logger.Info("resolved", Fields{"action": "toggle"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	fields, _ := entry["fields"].(map[string]interface{})
	if fields == nil {
		fields = entry
	}
	for key, want := range map[string]string{"component": "engine", "language": "ja", "action": "toggle"} {
		if got := fields[key]; got != want {
			t.Errorf("field %q = %v, want %q", key, got, want)
		}
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf}).
		WithRequestID("req-123")

	logger.Info("handling")

	if !strings.Contains(buf.String(), "req-123") {
		t.Errorf("output %q should contain the request id", buf.String())
	}
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.ErrorWithErr("operation failed", errors.New("boom"))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("output %q should contain the error text", buf.String())
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := New().WithLevel(LevelInfo)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatConsole, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("hello", Fields{"key": "value"})

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("text output = %q", out)
	}
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf}))

	Info("through package function")

	if !strings.Contains(buf.String(), "through package function") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
