// File: doc.go
// Title: Interrupt Package Documentation
// Description: Package documentation for the cooperative cancellation flag.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16

// Package interrupt provides the cooperative cancellation flag shared by
// the MCL interpreter components.
//
// The flag is the only piece of interpreter state touched from more than
// one execution context: the host's interrupt handler sets it while a
// command loop is in progress. Every unbounded loop in the interpreter
// polls Stopped at a defined point and aborts with a COMMAND_STOPPED error
// when it observes the flag. The engine clears the pending queue and resets
// the flag as part of handling that abort.
package interrupt
