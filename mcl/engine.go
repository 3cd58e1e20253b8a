// File: engine.go
// Title: MCL Interpreter Engine
// Description: Wires the command registry, variable store, command
//              queue, stop flag, parser, and dispatcher into one
//              interpreter. Run takes a raw line from lookup through
//              binding to execution; the queue methods feed lines in,
//              and a COMMAND_STOPPED outcome discards all pending work
//              and rearms the flag in one place.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
// - 2026-08-19: Line length guard moved in front of tokenization

package mcl

import (
	"context"
	"io"
	"os"

	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
	"github.com/mkoester/axisctl/mcl/dispatch"
	"github.com/mkoester/axisctl/mcl/interrupt"
	"github.com/mkoester/axisctl/mcl/parser"
	"github.com/mkoester/axisctl/mcl/queue"
	"github.com/mkoester/axisctl/mcl/registry"
	"github.com/mkoester/axisctl/mcl/vars"
	axstringx "github.com/mkoester/axisctl/utils/stringx"
)

// Options configures a new engine
type Options struct {
	// Logger receives interpreter and audit output. Defaults to the
	// package default logger.
	Logger *axlog.Logger

	// Output receives command output such as HELP listings and GET
	// results. Defaults to os.Stdout.
	Output io.Writer

	// Version is printed by the VERSION command
	Version string

	// MaxLineLength bounds accepted command lines
	MaxLineLength int

	// Exit is called once when EXIT runs. Optional.
	Exit func()
}

// Engine is the MCL interpreter. All state lives on the engine value;
// two engines in one process do not share anything.
type Engine struct {
	registry   *registry.Registry
	vars       *vars.Store
	queue      *queue.Queue
	flag       *interrupt.Flag
	dispatcher *dispatch.Dispatcher

	logger  *axlog.Logger
	output  io.Writer
	version string
	maxLine int
	exit    func()

	exitRequested bool
}

// New creates an engine with the built-in commands registered
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = axlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.MaxLineLength <= 0 {
		opts.MaxLineLength = queue.DefaultMaxLineLength
	}

	logger := opts.Logger.WithField("component", "mcl-engine")

	e := &Engine{
		registry: registry.New(registry.Options{Logger: opts.Logger}),
		vars:     vars.New(opts.Logger),
		queue: queue.New(queue.Options{
			Logger:        opts.Logger,
			MaxLineLength: opts.MaxLineLength,
		}),
		flag:       interrupt.New(opts.Logger),
		dispatcher: dispatch.New(opts.Logger),
		logger:     logger,
		output:     opts.Output,
		version:    axstringx.DefaultIfBlank(opts.Version, "dev"),
		maxLine:    opts.MaxLineLength,
		exit:       opts.Exit,
	}

	if err := e.registerBuiltins(); err != nil {
		return nil, err
	}
	return e, nil
}

// Register adds an application command to the engine
func (e *Engine) Register(cmd *registry.Command) error {
	return e.registry.Register(cmd)
}

// Run interprets one command line: tokenize, look up the command, bind
// the parameters, dispatch. Blank lines are ignored. When the outcome
// carries COMMAND_STOPPED the pending queue is cleared and the stop
// flag rearmed before the error is returned.
func (e *Engine) Run(ctx context.Context, line string) error {
	if axstringx.IsBlank(line) {
		return nil
	}
	if len(line) > e.maxLine {
		return axerror.Newf("command line exceeds %d characters", e.maxLine).
			WithCode(axerror.CodeLineTooLong).
			WithOperation("mcl.Run")
	}

	err := e.run(ctx, line)
	if axerror.HasCode(err, axerror.CodeCommandStopped) {
		dropped := e.queue.Len()
		e.queue.Clear()
		e.flag.Reset()
		e.logger.Info("command stopped, pending queue discarded", axlog.Fields{
			"dropped": dropped,
		})
	}
	return err
}

func (e *Engine) run(ctx context.Context, line string) error {
	if e.flag.Stopped() {
		return axerror.New("command stopped").
			WithCode(axerror.CodeCommandStopped).
			WithOperation("mcl.Run")
	}

	tokens := parser.Tokenize(line)
	cmd, err := e.registry.Lookup(tokens[0].Text)
	if err != nil {
		return err
	}

	values, err := parser.Bind(line, tokens[1:], cmd.Params, parser.BindOptions{
		Lookup:  e.vars.Lookup,
		Stopped: e.flag.Stopped,
	})
	if err != nil {
		return err
	}

	return e.dispatcher.Dispatch(ctx, cmd, values).Err
}

// Enqueue appends one line to the pending queue
func (e *Engine) Enqueue(line string) error {
	return e.queue.Enqueue(line)
}

// EnqueueBatch inserts a block of lines ahead of everything pending,
// keeping the block's internal order.
func (e *Engine) EnqueueBatch(lines []string) error {
	return e.queue.EnqueueBatch(lines)
}

// PopAndRun takes the next pending line and interprets it. An empty
// queue fails with QUEUE_EMPTY.
func (e *Engine) PopAndRun(ctx context.Context) error {
	line, err := e.queue.Pop()
	if err != nil {
		return err
	}
	return e.Run(ctx, line)
}

// QueueEmpty reports whether no lines are pending
func (e *Engine) QueueEmpty() bool {
	return e.queue.IsEmpty()
}

// QueueLen returns the number of pending lines
func (e *Engine) QueueLen() int {
	return e.queue.Len()
}

// ClearQueue discards all pending lines
func (e *Engine) ClearQueue() {
	e.queue.Clear()
}

// Interrupt raises the stop flag. Safe to call from a signal handler
// goroutine while a command is running.
func (e *Engine) Interrupt() {
	e.flag.Set()
}

// ExitRequested reports whether EXIT has run
func (e *Engine) ExitRequested() bool {
	return e.exitRequested
}
