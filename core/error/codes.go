// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across axisctl. The codes cover the command
//              interpretation core (registry, queue, parser, variables,
//              cancellation) plus generic infrastructure failures.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial implementation with interpreter error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for axisctl
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Command interpretation
	CodeInvalidCommand      Code = "INVALID_COMMAND"
	CodeDuplicateCommand    Code = "DUPLICATE_COMMAND"
	CodeMissingParameter    Code = "MISSING_PARAMETER"
	CodeUnexpectedParameter Code = "UNEXPECTED_PARAMETER"
	CodeUndefinedVariable   Code = "UNDEFINED_VARIABLE"
	CodeCommandStopped      Code = "COMMAND_STOPPED"

	// Queue and input bounds
	CodeQueueEmpty  Code = "QUEUE_EMPTY"
	CodeLineTooLong Code = "LINE_TOO_LONG"
	CodeNameTooLong Code = "NAME_TOO_LONG"

	// Script and configuration
	CodeScriptError Code = "SCRIPT_ERROR"
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidCommand, CodeDuplicateCommand, CodeMissingParameter,
		CodeUnexpectedParameter, CodeUndefinedVariable, CodeCommandStopped,
		CodeQueueEmpty, CodeLineTooLong, CodeNameTooLong,
		CodeScriptError, CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidCommand, CodeDuplicateCommand, CodeMissingParameter,
		CodeUnexpectedParameter, CodeUndefinedVariable, CodeCommandStopped:
		return "interpreter"
	case CodeQueueEmpty, CodeLineTooLong, CodeNameTooLong:
		return "bounds"
	case CodeScriptError, CodeConfigError:
		return "input"
	default:
		return "generic"
	}
}
