// File: flag.go
// Title: Cooperative Cancellation Flag
// Description: Implements the process-wide cancellation flag for the MCL
//              interpreter. The flag is set from an asynchronous context
//              (typically a signal handler) and polled cooperatively inside
//              every loop that may run unboundedly: help listings, variable
//              listings, script reading, and quote-span scanning.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial implementation

package interrupt

import (
	"sync/atomic"

	axlog "github.com/mkoester/axisctl/core/log"
)

// Flag is a cooperative cancellation token. Set may be called from any
// goroutine; Stopped and Reset are polled from the interpreter's single
// execution context.
type Flag struct {
	stopped atomic.Bool
	logger  *axlog.Logger
}

// New creates a new cancellation flag
func New(logger *axlog.Logger) *Flag {
	if logger == nil {
		logger = axlog.GetDefault()
	}
	return &Flag{
		logger: logger.WithField("component", "interrupt-flag"),
	}
}

// Set raises the flag. Safe to call from a signal-handling goroutine while
// the interpreter is mid-operation.
func (f *Flag) Set() {
	if !f.stopped.Swap(true) {
		f.logger.Debug("cancellation requested")
	}
}

// Stopped reports whether cancellation has been requested
func (f *Flag) Stopped() bool {
	return f.stopped.Load()
}

// Reset lowers the flag so the next top-level command cycle starts clean
func (f *Flag) Reset() {
	if f.stopped.Swap(false) {
		f.logger.Debug("cancellation flag reset")
	}
}
