// File: doc.go
// Title: Command Queue Package Documentation
// Description: Package documentation for the pending-command queue and its
//              ordering contract.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17

// Package queue implements the MCL interpreter's pending-command queue.
//
// The ordering contract has a non-obvious shape worth stating precisely:
//
//   - Successive Enqueue calls execute first-in, first-out.
//   - An EnqueueBatch call (a script read through FILE) executes before
//     every line that was already pending when the batch arrived, and lines
//     within the batch keep their original order.
//
// Neither a plain FIFO nor a LIFO queue reproduces both properties; the
// queue therefore prepends batches as a block and appends singles, popping
// from the front. Lines are bounded by an explicit length check that fails
// with LINE_TOO_LONG rather than truncating.
package queue
