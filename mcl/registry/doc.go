// File: doc.go
// Title: Command Registry Package Documentation
// Description: Package documentation for the MCL command registry.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17

// Package registry implements the MCL command registry.
//
// Commands are immutable descriptors: a canonical uppercase name, an
// ordered parameter shape, descriptions, and a handler. Lookup is
// case-insensitive; enumeration follows registration order so help
// listings are deterministic. The registry is populated at startup and
// offers no deletion.
package registry
