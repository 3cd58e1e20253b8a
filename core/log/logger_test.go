// File: logger_test.go
// Title: Logger Unit Tests
// Description: Unit tests for the structured logger including level
//              filtering, persistent fields, formatter selection, and
//              coded error logging.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	axerror "github.com/mkoester/axisctl/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("not visible")
	logger.Info("not visible either")
	if buf.Len() != 0 {
		t.Fatalf("Expected suppressed output, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected warn output, got %q", buf.String())
	}
}

func TestAuditBypassesLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)

	logger.Audit("command executed")
	if !strings.Contains(buf.String(), "command executed") {
		t.Errorf("Audit entries must bypass level filtering, got %q", buf.String())
	}
}

func TestWithFieldPersistence(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	derived := logger.WithField("component", "command-queue")

	derived.Info("line queued", Fields{"pending": 3})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if data["component"] != "command-queue" {
		t.Errorf("Expected component field, got %v", data["component"])
	}
	if data["pending"] != float64(3) {
		t.Errorf("Expected pending field, got %v", data["pending"])
	}
	if data["logger"] != "test" {
		t.Errorf("Expected logger name, got %v", data["logger"])
	}

	// Parent logger must not inherit the derived field
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "command-queue") {
		t.Error("Parent logger leaked derived field")
	}
}

func TestTextFormatterFieldOrder(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	logger.Info("msg", Fields{"b": 2, "a": 1})

	out := buf.String()
	if strings.Index(out, "a=1") > strings.Index(out, "b=2") {
		t.Errorf("Expected sorted field order, got %q", out)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedLevel string
	}{
		{
			name:          "Low severity logs at info",
			err:           axerror.New("unknown command").WithCode(axerror.CodeInvalidCommand),
			expectedLevel: "[INF]",
		},
		{
			name:          "Medium severity logs at warn",
			err:           axerror.New("line too long").WithCode(axerror.CodeLineTooLong),
			expectedLevel: "[WRN]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatText)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.expectedLevel) {
				t.Errorf("Expected %s entry, got %q", tt.expectedLevel, buf.String())
			}
			if !strings.Contains(buf.String(), "error_code") {
				t.Errorf("Expected error_code field, got %q", buf.String())
			}
		})
	}

	t.Run("Nil error is a no-op", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelTrace, FormatText)
		logger.LogError(nil)
		if buf.Len() != 0 {
			t.Errorf("Expected no output, got %q", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  Level
		expectErr bool
	}{
		{"debug", LevelDebug, false},
		{"  INFO ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"aud", LevelAudit, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Error("Expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, level, tt.expected)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("Debug must be disabled at info level")
	}

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("Expected debug output after SetLevel, got %q", buf.String())
	}
}
