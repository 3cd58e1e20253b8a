// File: registry.go
// Title: MCL Command Registry
// Description: Implements the command registry of the MCL interpreter.
//              Commands are stored under canonical uppercase names, looked
//              up case-insensitively, and enumerated in registration order
//              for help listings. Names are bounded explicitly; over-length
//              registrations and lookups fail instead of truncating.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation

package registry

import (
	"context"
	"strings"
	"sync"

	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
	axstringx "github.com/mkoester/axisctl/utils/stringx"
)

// DefaultMaxNameLength bounds a canonical command name
const DefaultMaxNameLength = 32

// HandlerFunc executes a command with its bound parameter values. The
// values arrive in declaration order; optional parameters that were absent
// are bound to the empty string.
type HandlerFunc func(ctx context.Context, params []string) error

// Parameter describes one declared parameter of a command
type Parameter struct {
	// Name is the display name used in help output
	Name string

	// Optional parameters bind an empty string when no token remains
	Optional bool

	// Quotable parameters consume a quote span when the value starts
	// with a double quote
	Quotable bool

	// Resolve parameters are substituted from the variable store when a
	// matching key exists
	Resolve bool
}

// Command is an immutable command descriptor
type Command struct {
	// Name is the canonical uppercase registry key
	Name string

	// Params are the declared parameters in binding order
	Params []Parameter

	// Short is the one-line summary shown in the help listing
	Short string

	// Long is the full description shown by HELP <command>
	Long string

	// Handler executes the command
	Handler HandlerFunc
}

// Usage renders the command's grammar line from its parameter shapes,
// with (name) for required and [name] for optional parameters.
func (c *Command) Usage() string {
	parts := make([]string, 0, len(c.Params)+1)
	parts = append(parts, c.Name)
	for _, p := range c.Params {
		if p.Optional {
			parts = append(parts, "["+p.Name+"]")
		} else {
			parts = append(parts, "("+p.Name+")")
		}
	}
	return strings.Join(parts, " ")
}

// Registry maps canonical command names to descriptors
type Registry struct {
	commands map[string]*Command
	order    []string
	maxName  int
	logger   *axlog.Logger
	mutex    sync.RWMutex
}

// Options configures registry behavior
type Options struct {
	Logger        *axlog.Logger
	MaxNameLength int
}

// New creates an empty command registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = axlog.GetDefault()
	}
	if opts.MaxNameLength <= 0 {
		opts.MaxNameLength = DefaultMaxNameLength
	}

	return &Registry{
		commands: make(map[string]*Command),
		maxName:  opts.MaxNameLength,
		logger:   opts.Logger.WithField("component", "command-registry"),
	}
}

// Register adds a command under its canonical uppercase name
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return axerror.New("command cannot be nil").
			WithCode(axerror.CodeInvalidInput).
			WithOperation("registry.Register")
	}
	if axstringx.IsBlank(cmd.Name) {
		return axerror.New("command name cannot be empty").
			WithCode(axerror.CodeInvalidInput).
			WithOperation("registry.Register")
	}
	if len(cmd.Name) > r.maxName {
		return axerror.Newf("command name exceeds %d characters", r.maxName).
			WithCode(axerror.CodeNameTooLong).
			WithOperation("registry.Register").
			WithDetail("name", axstringx.Truncate(cmd.Name, 64))
	}
	if cmd.Handler == nil {
		return axerror.Newf("command %s has no handler", cmd.Name).
			WithCode(axerror.CodeInvalidInput).
			WithOperation("registry.Register")
	}

	name := strings.ToUpper(cmd.Name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[name]; exists {
		return axerror.Newf("command %s already registered", name).
			WithCode(axerror.CodeDuplicateCommand).
			WithOperation("registry.Register").
			WithDetail("name", name)
	}

	stored := *cmd
	stored.Name = name
	r.commands[name] = &stored
	r.order = append(r.order, name)

	r.logger.Debug("command registered", axlog.Fields{
		"name":       name,
		"paramCount": len(stored.Params),
	})
	return nil
}

// Lookup canonicalizes token and returns the matching command. Unknown and
// over-length names both fail with INVALID_COMMAND.
func (r *Registry) Lookup(token string) (*Command, error) {
	if len(token) > r.maxName {
		return nil, axerror.New("command name exceeds the canonicalization bound").
			WithCode(axerror.CodeInvalidCommand).
			WithOperation("registry.Lookup").
			WithDetail("name", axstringx.Truncate(token, 64))
	}

	name := strings.ToUpper(token)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cmd, ok := r.commands[name]
	if !ok {
		return nil, axerror.Newf("unknown command: %s", name).
			WithCode(axerror.CodeInvalidCommand).
			WithOperation("registry.Lookup").
			WithDetail("name", name)
	}
	return cmd, nil
}

// Commands returns all descriptors in registration order
func (r *Registry) Commands() []*Command {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.commands[name])
	}
	return result
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.commands)
}
