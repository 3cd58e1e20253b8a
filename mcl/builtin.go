// File: builtin.go
// Title: Built-in MCL Commands
// Description: Registers the interpreter's built-in commands: HELP,
//              VERSION, SET, GET, VARIABLES, FILE and EXIT. The
//              handlers are closures over the engine, so a second
//              engine gets its own independent set.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package mcl

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
	"github.com/mkoester/axisctl/mcl/registry"
	axstringx "github.com/mkoester/axisctl/utils/stringx"
)

func (e *Engine) registerBuiltins() error {
	builtins := []*registry.Command{
		{
			Name:    "HELP",
			Params:  []registry.Parameter{{Name: "command", Optional: true}},
			Short:   "list commands or describe one command",
			Long:    "Without a parameter, lists every registered command with its usage line. With a command name, prints that command's usage and description.",
			Handler: e.runHelp,
		},
		{
			Name:    "VERSION",
			Short:   "show the interpreter version",
			Handler: e.runVersion,
		},
		{
			Name: "SET",
			Params: []registry.Parameter{
				{Name: "variable"},
				{Name: "value", Quotable: true, Resolve: true},
			},
			Short:   "assign a value to a variable",
			Long:    "Stores value under variable, creating it or overwriting the previous value. The value may be quoted to contain whitespace, and is resolved against the variable store first.",
			Handler: e.runSet,
		},
		{
			Name:    "GET",
			Params:  []registry.Parameter{{Name: "variable"}},
			Short:   "print the value of a variable",
			Handler: e.runGet,
		},
		{
			Name:    "VARIABLES",
			Short:   "list all defined variables",
			Handler: e.runVariables,
		},
		{
			Name: "FILE",
			Params: []registry.Parameter{
				{Name: "path", Quotable: true, Resolve: true},
			},
			Short:   "queue the commands from a script file",
			Long:    "Reads the file line by line and inserts its commands ahead of everything pending, keeping the file order. Blank lines are skipped.",
			Handler: e.runFile,
		},
		{
			Name:    "EXIT",
			Short:   "leave the interpreter",
			Handler: e.runExit,
		},
	}

	for _, cmd := range builtins {
		if err := e.registry.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) runHelp(ctx context.Context, params []string) error {
	if params[0] != "" {
		cmd, err := e.registry.Lookup(params[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(e.output, cmd.Usage())
		fmt.Fprintln(e.output, axstringx.DefaultIfBlank(cmd.Long, cmd.Short))
		return nil
	}

	// Align the descriptions behind the widest usage line
	commands := e.registry.Commands()
	width := 0
	for _, cmd := range commands {
		if n := len(cmd.Usage()); n > width {
			width = n
		}
	}
	for _, cmd := range commands {
		if e.flag.Stopped() {
			return axerror.New("help listing stopped").
				WithCode(axerror.CodeCommandStopped).
				WithOperation("mcl.HELP")
		}
		fmt.Fprintf(e.output, "%s  %s\n", axstringx.PadRight(cmd.Usage(), width), cmd.Short)
	}
	return nil
}

func (e *Engine) runVersion(ctx context.Context, params []string) error {
	fmt.Fprintln(e.output, e.version)
	return nil
}

func (e *Engine) runSet(ctx context.Context, params []string) error {
	e.vars.Set(params[0], params[1])
	return nil
}

func (e *Engine) runGet(ctx context.Context, params []string) error {
	value, err := e.vars.Get(params[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.output, value)
	return nil
}

func (e *Engine) runVariables(ctx context.Context, params []string) error {
	for _, pair := range e.vars.Pairs() {
		if e.flag.Stopped() {
			return axerror.New("variable listing stopped").
				WithCode(axerror.CodeCommandStopped).
				WithOperation("mcl.VARIABLES")
		}
		fmt.Fprintf(e.output, "%s = %s\n", pair.Key, pair.Value)
	}
	return nil
}

func (e *Engine) runFile(ctx context.Context, params []string) error {
	path := params[0]

	file, err := os.Open(path)
	if err != nil {
		return axerror.Wrap(err, "cannot open script file").
			WithCode(axerror.CodeScriptError).
			WithOperation("mcl.FILE").
			WithDetail("path", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if e.flag.Stopped() {
			return axerror.New("script loading stopped").
				WithCode(axerror.CodeCommandStopped).
				WithOperation("mcl.FILE").
				WithDetail("path", path)
		}
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if axstringx.IsBlank(line) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return axerror.Wrap(err, "cannot read script file").
			WithCode(axerror.CodeScriptError).
			WithOperation("mcl.FILE").
			WithDetail("path", path)
	}

	if err := e.queue.EnqueueBatch(lines); err != nil {
		return err
	}
	e.logger.Info("script queued", axlog.Fields{
		"path":  path,
		"lines": len(lines),
	})
	return nil
}

func (e *Engine) runExit(ctx context.Context, params []string) error {
	e.exitRequested = true
	e.logger.Debug("exit requested")
	if e.exit != nil {
		e.exit()
	}
	return nil
}
