// File: store.go
// Title: Variable Store Implementation
// Description: Implements the case-sensitive string-to-string variable
//              store of the MCL interpreter. Keys overwrite on set with
//              last-write-wins semantics; enumeration is sorted by key so
//              listings are stable across runs.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial implementation

package vars

import (
	"sort"
	"sync"

	axerror "github.com/mkoester/axisctl/core/error"
	axlog "github.com/mkoester/axisctl/core/log"
)

// Store holds user-defined variables. Keys are case-sensitive; values are
// plain text with no expiry and no persistence across restarts.
type Store struct {
	values map[string]string
	logger *axlog.Logger
	mutex  sync.RWMutex
}

// Pair is one variable binding, used for enumeration
type Pair struct {
	Key   string
	Value string
}

// New creates an empty variable store
func New(logger *axlog.Logger) *Store {
	if logger == nil {
		logger = axlog.GetDefault()
	}
	return &Store{
		values: make(map[string]string),
		logger: logger.WithField("component", "variable-store"),
	}
}

// Set inserts or overwrites a variable. It always succeeds.
func (s *Store) Set(key, value string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = value

	s.logger.Debug("variable set", axlog.Fields{
		"key": key,
	})
}

// Get returns the value for key or an UNDEFINED_VARIABLE error
func (s *Store) Get(key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", axerror.Newf("variable %s is not defined", key).
			WithCode(axerror.CodeUndefinedVariable).
			WithOperation("vars.Get").
			WithDetail("key", key)
	}
	return value, nil
}

// Lookup returns the value for key and whether it exists. Used by the
// parser's resolve step, which keeps the literal token on a miss.
func (s *Store) Lookup(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Pairs returns all bindings sorted by key
func (s *Store) Pairs() []Pair {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	pairs := make([]Pair, 0, len(s.values))
	for k, v := range s.values {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

// Len returns the number of stored variables
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.values)
}
