// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the small set of string operations the axisctl
//              components share: blank detection, defaulting, truncation,
//              and padding for column-aligned console output. All functions
//              are Unicode-safe and allocation-conscious.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the fallback value when s is blank
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// truncation happened. A max below the ellipsis length returns a plain cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// PadRight pads s with spaces on the right up to width runes.
// Strings already at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
