// File: codes_test.go
// Title: Error Code Unit Tests
// Description: Unit tests for code validation and category
//              classification.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidCommand, CodeDuplicateCommand, CodeMissingParameter,
		CodeUnexpectedParameter, CodeUndefinedVariable, CodeCommandStopped,
		CodeQueueEmpty, CodeLineTooLong, CodeNameTooLong,
		CodeScriptError, CodeConfigError,
	}
	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("Code %s should be valid", code)
		}
	}

	for _, code := range []Code{"", "BOGUS", "invalid_command"} {
		if code.IsValid() {
			t.Errorf("Code %q should be invalid", code)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{CodeInvalidCommand, "interpreter"},
		{CodeMissingParameter, "interpreter"},
		{CodeCommandStopped, "interpreter"},
		{CodeQueueEmpty, "bounds"},
		{CodeLineTooLong, "bounds"},
		{CodeNameTooLong, "bounds"},
		{CodeScriptError, "input"},
		{CodeConfigError, "input"},
		{CodeUnknown, "generic"},
		{Code("BOGUS"), "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.expected {
				t.Errorf("Expected category %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCodeString(t *testing.T) {
	if CodeInvalidCommand.String() != "INVALID_COMMAND" {
		t.Errorf("Unexpected string: %s", CodeInvalidCommand.String())
	}
}
