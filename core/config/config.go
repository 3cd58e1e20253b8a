// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type and core functionality for
//              loading, parsing, and accessing configuration data from
//              TOML and YAML files with dot-notation key access and
//              typed getters with defaults.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	axerror "github.com/mkoester/axisctl/core/error"
	axstringx "github.com/mkoester/axisctl/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu       sync.RWMutex
	data     map[string]interface{}
	filePath string
	format   Format
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format   Format                 // File format (default: auto-detect)
	Defaults map[string]interface{} // Default values for absent keys
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if axstringx.IsBlank(filePath) {
		return nil, axerror.New("config file path cannot be empty").
			WithCode(axerror.CodeConfigError).
			WithOperation("config.LoadWithOptions")
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, axerror.Wrap(err, "cannot read config file").
			WithCode(axerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &data)
	default:
		err = toml.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, axerror.Wrap(err, "cannot parse config file").
			WithCode(axerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	cfg := &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}

	for key, value := range options.Defaults {
		if _, ok := cfg.Get(key); !ok {
			cfg.set(key, value)
		}
	}

	return cfg, nil
}

// New creates an empty configuration, useful when no config file exists
func New() *Config {
	return &Config{
		data:   make(map[string]interface{}),
		format: FormatTOML,
	}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected configuration format
func (c *Config) Format() Format {
	return c.format
}

// Get returns the raw value at the given dot-notation key
func (c *Config) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	current := interface{}(c.data)
	for _, part := range strings.Split(key, ".") {
		m, ok := toStringMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString returns the string value at key, or fallback when absent
func (c *Config) GetString(key, fallback string) string {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}

// GetInt returns the integer value at key, or fallback when absent or
// not convertible
func (c *Config) GetInt(key string, fallback int) int {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetBool returns the boolean value at key, or fallback when absent or
// not convertible
func (c *Config) GetBool(key string, fallback bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// set stores a value at the given dot-notation key, creating intermediate
// tables as needed. Internal, used for defaults only.
func (c *Config) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := toStringMap(current[part])
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// toStringMap normalizes nested map types produced by the TOML and YAML
// decoders to a common shape.
func toStringMap(value interface{}) (map[string]interface{}, bool) {
	switch m := value.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			result[key] = v
		}
		return result, true
	default:
		return nil, false
	}
}
