// File: parser.go
// Title: MCL Line Parser and Parameter Binder
// Description: Splits a command line into position-tracked tokens and
//              binds the tokens to a command's declared parameters.
//              Binding applies variable resolution, reconstructs quoted
//              spans from the original line text, and polls the stop
//              flag per consumed token.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation

package parser

import (
	"strings"

	axerror "github.com/mkoester/axisctl/core/error"
	"github.com/mkoester/axisctl/mcl/registry"
)

// Token is one whitespace-delimited word of a command line. Start and End
// are byte offsets into the original line, so quoted spans can be
// reconstructed with the inter-token whitespace intact.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits line on runs of spaces and tabs. Offsets refer to the
// line as given; the caller trims line endings before tokenizing.
func Tokenize(line string) []Token {
	var tokens []Token

	start := -1
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' || line[i] == '\t' {
			if start >= 0 {
				tokens = append(tokens, Token{Text: line[start:i], Start: start, End: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: line[start:], Start: start, End: len(line)})
	}
	return tokens
}

// BindOptions supplies the binder's two external dependencies. Lookup
// consults the variable store; Stopped reports the cancellation flag.
// Either may be nil.
type BindOptions struct {
	Lookup  func(key string) (string, bool)
	Stopped func() bool
}

// Bind matches tokens against the declared parameters and returns one
// value per parameter in declaration order.
//
// A missing required parameter fails with MISSING_PARAMETER; an absent
// optional parameter binds the empty string. Resolving parameters are
// substituted from the variable store exactly once, with the literal
// token kept on a miss. A quotable value that starts with a double quote
// consumes tokens until one ends with a double quote, and the span
// between them is taken verbatim from the original line. Tokens left
// over after the last parameter fail with UNEXPECTED_PARAMETER.
func Bind(line string, tokens []Token, params []registry.Parameter, opts BindOptions) ([]string, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	stopped := opts.Stopped
	if stopped == nil {
		stopped = func() bool { return false }
	}

	values := make([]string, 0, len(params))
	pos := 0

	for _, param := range params {
		if pos >= len(tokens) {
			if param.Optional {
				values = append(values, "")
				continue
			}
			return nil, axerror.Newf("missing required parameter (%s)", param.Name).
				WithCode(axerror.CodeMissingParameter).
				WithOperation("parser.Bind").
				WithDetail("parameter", param.Name)
		}

		if stopped() {
			return nil, stoppedErr()
		}

		value := tokens[pos].Text
		if param.Resolve {
			if resolved, ok := lookup(value); ok {
				value = resolved
			}
		}
		pos++

		if param.Quotable && strings.HasPrefix(value, `"`) {
			span, next, err := consumeQuoted(line, tokens, pos, value, stopped)
			if err != nil {
				return nil, err
			}
			value = span
			pos = next
		}

		values = append(values, value)
	}

	if pos < len(tokens) {
		return nil, axerror.Newf("unexpected parameter: %s", tokens[pos].Text).
			WithCode(axerror.CodeUnexpectedParameter).
			WithOperation("parser.Bind").
			WithDetail("token", tokens[pos].Text)
	}
	return values, nil
}

// consumeQuoted extends a value that opened with a double quote across
// subsequent tokens. The opening token has already been consumed and
// resolved; everything after it is taken verbatim from line so the
// original whitespace survives. An unterminated quote takes the rest of
// the line.
func consumeQuoted(line string, tokens []Token, pos int, opened string, stopped func() bool) (string, int, error) {
	value := opened[1:]
	if len(value) > 0 && strings.HasSuffix(value, `"`) {
		return value[:len(value)-1], pos, nil
	}

	spanEnd := tokens[pos-1].End
	for i := pos; i < len(tokens); i++ {
		if stopped() {
			return "", 0, stoppedErr()
		}
		if strings.HasSuffix(tokens[i].Text, `"`) {
			span := value + line[spanEnd:tokens[i].End]
			return span[:len(span)-1], i + 1, nil
		}
	}
	return value + line[spanEnd:], len(tokens), nil
}

func stoppedErr() *axerror.Error {
	return axerror.New("command stopped").
		WithCode(axerror.CodeCommandStopped).
		WithOperation("parser.Bind")
}
