// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the structured error handling
//              used across axisctl.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13

// Package error implements structured error handling for axisctl.
//
// Errors carry a Code for classification, a Severity, an optional operation
// name, and free-form details. They wrap causes and cooperate with the
// standard errors package:
//
//	err := axerror.New("command not found").
//		WithCode(axerror.CodeInvalidCommand).
//		WithOperation("registry.Lookup").
//		WithDetail("name", name)
//
//	if axerror.HasCode(err, axerror.CodeInvalidCommand) {
//		// expected user failure, print and continue
//	}
//
// The package is conventionally imported with the axerror alias because its
// name shadows the builtin error type.
package error
