// File: doc.go
// Title: Package Documentation for dispatch
// Description: Package overview and usage notes.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18

// Package dispatch executes resolved MCL commands.
//
// The dispatcher is the single place where command handlers run. Each
// execution is tagged with a generated request ID, timed, and written to
// the audit log regardless of outcome. Handler errors are returned in
// the Result exactly as the handler produced them, so the calling layer
// can react to error codes such as COMMAND_STOPPED.
package dispatch
