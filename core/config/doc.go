// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for the configuration loader used by
//              the axisctl binary.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15

// Package config loads axisctl configuration from TOML or YAML files.
//
// The format is detected from the file extension (.toml default, .yaml/.yml
// for YAML). Values are read with dot-notation keys and typed getters that
// take a fallback:
//
//	cfg, err := config.Load("configs/axisctl.toml")
//	prompt := cfg.GetString("shell.prompt", "axis> ")
//	maxLine := cfg.GetInt("interpreter.max_line_length", 512)
//
// Configuration is read once at startup and treated as immutable for the
// process lifetime.
package config
