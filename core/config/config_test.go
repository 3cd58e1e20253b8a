// File: config_test.go
// Title: Configuration Loader Unit Tests
// Description: Unit tests for TOML and YAML loading, format auto-detection,
//              dot-notation access, typed getters, and defaults.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15

package config

import (
	"os"
	"path/filepath"
	"testing"

	axerror "github.com/mkoester/axisctl/core/error"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

const tomlSample = `
[shell]
prompt = "axis> "
history = true

[interpreter]
max_line_length = 256

[log]
level = "debug"
format = "text"
`

const yamlSample = `
shell:
  prompt: "axis> "
  history: true
interpreter:
  max_line_length: 256
log:
  level: debug
`

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "axisctl.toml", tomlSample)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Expected TOML format, got %s", cfg.Format())
	}
	if got := cfg.GetString("shell.prompt", ""); got != "axis> " {
		t.Errorf("Unexpected prompt: %q", got)
	}
	if got := cfg.GetInt("interpreter.max_line_length", 0); got != 256 {
		t.Errorf("Unexpected max_line_length: %d", got)
	}
	if !cfg.GetBool("shell.history", false) {
		t.Error("Expected history = true")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "axisctl.yaml", yamlSample)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load YAML config: %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Expected YAML format, got %s", cfg.Format())
	}
	if got := cfg.GetString("log.level", ""); got != "debug" {
		t.Errorf("Unexpected log level: %q", got)
	}
	if got := cfg.GetInt("interpreter.max_line_length", 0); got != 256 {
		t.Errorf("Unexpected max_line_length: %d", got)
	}
}

func TestGetFallbacks(t *testing.T) {
	path := writeTempConfig(t, "axisctl.toml", tomlSample)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if got := cfg.GetString("shell.missing", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback string, got %q", got)
	}
	if got := cfg.GetInt("shell.prompt", 42); got != 42 {
		t.Errorf("Expected fallback for wrong type, got %d", got)
	}
	if got := cfg.GetBool("nope.nope", true); !got {
		t.Error("Expected fallback bool")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempConfig(t, "axisctl.toml", tomlSample)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"interpreter.max_line_length": 512, // present in file, must not override
			"interpreter.max_name_length": 32,  // absent, default applies
		},
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if got := cfg.GetInt("interpreter.max_line_length", 0); got != 256 {
		t.Errorf("Default must not override file value, got %d", got)
	}
	if got := cfg.GetInt("interpreter.max_name_length", 0); got != 32 {
		t.Errorf("Expected default applied, got %d", got)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("Blank path", func(t *testing.T) {
		_, err := Load("  ")
		if !axerror.HasCode(err, axerror.CodeConfigError) {
			t.Errorf("Expected CONFIG_ERROR, got %v", err)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if !axerror.HasCode(err, axerror.CodeConfigError) {
			t.Errorf("Expected CONFIG_ERROR, got %v", err)
		}
	})

	t.Run("Malformed TOML", func(t *testing.T) {
		path := writeTempConfig(t, "broken.toml", "[shell\nprompt =")
		_, err := Load(path)
		if !axerror.HasCode(err, axerror.CodeConfigError) {
			t.Errorf("Expected CONFIG_ERROR, got %v", err)
		}
	})
}

func TestNewEmptyConfig(t *testing.T) {
	cfg := New()
	if got := cfg.GetString("anything", "default"); got != "default" {
		t.Errorf("Expected default from empty config, got %q", got)
	}
}
