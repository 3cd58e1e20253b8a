// File: queue.go
// Title: Pending Command Queue
// Description: Implements the ordered queue of raw command lines awaiting
//              execution. Successive single enqueues pop in FIFO order; a
//              batch insertion (a script read by FILE) jumps ahead of every
//              line that was already pending while keeping its internal
//              order. Line length is bounded explicitly instead of relying
//              on a fixed buffer.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation

package queue

import (
	"sync"

	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
	axstringx "github.com/mkoester/axisctl/utils/stringx"
)

// DefaultMaxLineLength bounds a single queued command line
const DefaultMaxLineLength = 512

// Queue holds pending command lines. items[0] is the next line to execute.
type Queue struct {
	items   []string
	maxLine int
	logger  *axlog.Logger
	mutex   sync.Mutex
}

// Options configures queue behavior
type Options struct {
	Logger        *axlog.Logger
	MaxLineLength int
}

// New creates an empty command queue
func New(opts Options) *Queue {
	if opts.Logger == nil {
		opts.Logger = axlog.GetDefault()
	}
	if opts.MaxLineLength <= 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}

	return &Queue{
		maxLine: opts.MaxLineLength,
		logger:  opts.Logger.WithField("component", "command-queue"),
	}
}

// Enqueue adds one line behind all lines queued by earlier Enqueue calls,
// so successive single enqueues execute first-in, first-out.
func (q *Queue) Enqueue(line string) error {
	if err := q.checkLength(line); err != nil {
		return err
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.items = append(q.items, line)

	q.logger.Debug("line queued", axlog.Fields{
		"line":    axstringx.Truncate(line, 64),
		"pending": len(q.items),
	})
	return nil
}

// EnqueueBatch inserts lines ahead of everything already pending while
// preserving their mutual order: the whole batch executes before any line
// queued prior to this call, and within the batch earlier lines execute
// first. Insertion cost is proportional to the batch size.
//
// The batch is all-or-nothing: an over-length line rejects the entire batch
// and leaves the queue untouched.
func (q *Queue) EnqueueBatch(lines []string) error {
	for _, line := range lines {
		if err := q.checkLength(line); err != nil {
			return err
		}
	}

	q.mutex.Lock()
	defer q.mutex.Unlock()

	block := make([]string, 0, len(lines)+len(q.items))
	block = append(block, lines...)
	q.items = append(block, q.items...)

	q.logger.Debug("batch queued", axlog.Fields{
		"batch":   len(lines),
		"pending": len(q.items),
	})
	return nil
}

// Pop removes and returns the next line to execute
func (q *Queue) Pop() (string, error) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if len(q.items) == 0 {
		return "", axerror.New("command queue is empty").
			WithCode(axerror.CodeQueueEmpty).
			WithOperation("queue.Pop")
	}

	line := q.items[0]
	q.items = q.items[1:]
	return line, nil
}

// IsEmpty reports whether any lines are pending
func (q *Queue) IsEmpty() bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.items) == 0
}

// Len returns the number of pending lines
func (q *Queue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.items)
}

// Clear discards all pending lines. Called by the engine when a command
// aborts on the cancellation flag.
func (q *Queue) Clear() {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if len(q.items) > 0 {
		q.logger.Debug("queue cleared", axlog.Fields{"discarded": len(q.items)})
	}
	q.items = nil
}

func (q *Queue) checkLength(line string) error {
	if len(line) > q.maxLine {
		return axerror.Newf("command line exceeds %d bytes", q.maxLine).
			WithCode(axerror.CodeLineTooLong).
			WithOperation("queue.Enqueue").
			WithDetail("length", len(line)).
			WithDetail("limit", q.maxLine)
	}
	return nil
}
