// File: doc.go
// Title: Variable Store Package Documentation
// Description: Package documentation for the interpreter's variable store.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16

// Package vars implements the MCL interpreter's variable store: a
// case-sensitive string-to-string mapping with last-write-wins semantics.
//
// Substitution into command parameters is a single lookup performed by the
// parser for parameters declared with the resolve attribute; there is no
// recursive expansion.
package vars
