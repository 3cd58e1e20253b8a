// File: stringx_test.go
// Title: String Utilities Unit Tests
// Description: Unit tests for blank detection, defaulting, truncation, and
//              padding helpers including Unicode inputs and boundary widths.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", true},
		{"Spaces only", "   ", true},
		{"Tabs and newlines", "\t\n ", true},
		{"Simple word", "axis", false},
		{"Word with padding", "  axis  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestDefaultIfBlank(t *testing.T) {
	if got := DefaultIfBlank("", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := DefaultIfBlank("  ", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback for whitespace, got %q", got)
	}
	if got := DefaultIfBlank("value", "fallback"); got != "value" {
		t.Errorf("Expected original value, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"Shorter than max", "axis", 10, "axis"},
		{"Exactly max", "axis", 4, "axis"},
		{"Truncated with ellipsis", "axis motion control", 10, "axis mo..."},
		{"Tiny max", "axisctl", 2, "ax"},
		{"Zero max", "axisctl", 0, ""},
		{"Unicode runes", "münchen-achse", 9, "münche..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"Needs padding", "SET", 8, "SET     "},
		{"Already wide enough", "VARIABLES", 5, "VARIABLES"},
		{"Exact width", "HELP", 4, "HELP"},
		{"Unicode width", "äxis", 6, "äxis  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRight(tt.input, tt.width); got != tt.expected {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}
