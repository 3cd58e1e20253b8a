// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging used
//              across axisctl.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14

// Package log implements structured logging for axisctl.
//
// Loggers carry a minimum level, a formatter (JSON or text), and persistent
// context fields. Components derive their own logger from the one they are
// handed:
//
//	logger := axlog.GetDefault().WithField("component", "command-queue")
//	logger.Debug("line queued", axlog.Fields{"pending": q.Len()})
//
// Audit-level entries bypass level filtering so command execution trails
// survive a quiet production level.
package log
