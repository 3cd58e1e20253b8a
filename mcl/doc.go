// File: doc.go
// Title: Package Documentation for mcl
// Description: Package overview and usage notes.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18

// Package mcl implements the Motion Control Language interpreter that
// drives the axisctl console.
//
// An Engine owns a command registry, a variable store, a pending
// command queue, and a stop flag. Callers feed raw lines in through
// Enqueue, EnqueueBatch or Run; the engine tokenizes each line, looks
// the command up case-insensitively, binds the declared parameters with
// variable resolution and quoted spans, and dispatches the handler.
//
// The built-in commands HELP, VERSION, SET, GET, VARIABLES, FILE and
// EXIT are registered by New. Applications add their own commands with
// Register.
//
// Interrupt may be called from another goroutine, typically a signal
// handler, to raise the stop flag. Long-running work polls the flag and
// aborts with COMMAND_STOPPED; the engine then discards every pending
// line and rearms the flag, so the next command starts clean.
//
// A typical session:
//
//	engine, err := mcl.New(mcl.Options{Version: "v1.2.0"})
//	if err != nil {
//		return err
//	}
//	if err := engine.Run(ctx, `SET target "12.5 mm"`); err != nil {
//		return err
//	}
//	err = engine.Run(ctx, "GET target") // prints 12.5 mm
package mcl
