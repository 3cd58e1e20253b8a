// File: flag_test.go
// Title: Cancellation Flag Unit Tests
// Description: Unit tests for the cancellation flag including set/reset
//              cycles and setting from a concurrent goroutine.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16

package interrupt

import (
	"sync"
	"testing"
)

func TestFlagLifecycle(t *testing.T) {
	flag := New(nil)

	if flag.Stopped() {
		t.Error("New flag must not be set")
	}

	flag.Set()
	if !flag.Stopped() {
		t.Error("Expected flag set after Set")
	}

	// Set is idempotent
	flag.Set()
	if !flag.Stopped() {
		t.Error("Expected flag still set")
	}

	flag.Reset()
	if flag.Stopped() {
		t.Error("Expected flag cleared after Reset")
	}

	// Reset on a clear flag is a no-op
	flag.Reset()
	if flag.Stopped() {
		t.Error("Expected flag still clear")
	}
}

func TestFlagConcurrentSet(t *testing.T) {
	flag := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flag.Set()
		}()
	}
	wg.Wait()

	if !flag.Stopped() {
		t.Error("Expected flag set after concurrent Set calls")
	}
}
