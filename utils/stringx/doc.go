// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package documentation for the shared string helpers used
//              across the axisctl foundation packages.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12

// Package stringx provides the small set of string helpers shared by the
// axisctl components: blank detection, defaulting, rune-safe truncation,
// and right-padding for column-aligned console output.
//
// The package deliberately stays tiny; anything the standard library's
// strings package already expresses directly belongs there, not here.
package stringx
