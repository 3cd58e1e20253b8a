// File: doc.go
// Title: Package Documentation for parser
// Description: Package overview and usage notes.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17

// Package parser splits MCL command lines into position-tracked tokens
// and binds them to a command's declared parameters.
//
// Tokenize separates a line on runs of spaces and tabs and records the
// byte offsets of every token, so later stages can recover the original
// text between tokens. Bind walks a command's parameter declarations and
// produces one value per parameter: required parameters must have a
// token, optional ones bind the empty string, resolving ones are
// substituted from the variable store, and quotable ones may span
// several tokens when the value opens with a double quote. The quoted
// span is cut from the original line, so interior whitespace is
// preserved exactly as typed.
//
// Bind polls a caller-supplied stop predicate once per consumed token
// and aborts with COMMAND_STOPPED when it fires.
package parser
