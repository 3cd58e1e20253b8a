// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and log sinks
//              can distinguish expected user-facing failures (bad command
//              line) from infrastructure problems.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13

package error

// Severity represents how serious an error is
type Severity int

const (
	// SeverityLow marks expected, user-correctable failures
	SeverityLow Severity = iota

	// SeverityMedium marks failures that interrupt the current operation
	SeverityMedium

	// SeverityHigh marks failures that indicate an internal defect
	SeverityHigh
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidCommand, CodeMissingParameter, CodeUnexpectedParameter,
		CodeUndefinedVariable, CodeQueueEmpty, CodeCommandStopped:
		return SeverityLow
	case CodeLineTooLong, CodeNameTooLong, CodeDuplicateCommand,
		CodeScriptError, CodeConfigError, CodeNotFound, CodeInvalidInput:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
