// File: dispatch.go
// Title: MCL Command Dispatcher
// Description: Executes a resolved command with its bound parameter
//              values. Every execution gets a request ID, its duration is
//              measured, and completion is written to the audit log.
//              Handler errors pass through unchanged.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
	"github.com/mkoester/axisctl/mcl/registry"
)

// Result describes one completed execution
type Result struct {
	// RequestID identifies the execution in the audit trail
	RequestID string

	// Command is the canonical command name
	Command string

	// Duration is the handler's wall-clock runtime
	Duration time.Duration

	// Err is the handler's error, unchanged
	Err error
}

// Dispatcher runs command handlers and records an audit trail
type Dispatcher struct {
	logger *axlog.Logger
}

// New creates a dispatcher. A nil logger falls back to the default.
func New(logger *axlog.Logger) *Dispatcher {
	if logger == nil {
		logger = axlog.GetDefault()
	}
	return &Dispatcher{
		logger: logger.WithField("component", "dispatcher"),
	}
}

// Dispatch runs cmd's handler with the bound values and returns the
// outcome. The handler error is carried through in the result without
// wrapping, so callers can match on its code.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd *registry.Command, values []string) Result {
	result := Result{
		RequestID: uuid.NewString(),
		Command:   cmd.Name,
	}

	d.logger.Debug("dispatching command", axlog.Fields{
		"requestId":  result.RequestID,
		"command":    cmd.Name,
		"paramCount": len(values),
	})

	start := time.Now()
	result.Err = cmd.Handler(ctx, values)
	result.Duration = time.Since(start)

	fields := axlog.Fields{
		"requestId":  result.RequestID,
		"command":    cmd.Name,
		"durationMs": result.Duration.Milliseconds(),
		"success":    result.Err == nil,
	}
	if result.Err != nil {
		fields["errorCode"] = string(axerror.GetCode(result.Err))
	}
	d.logger.Audit("command executed", fields)

	return result
}
