// File: store_test.go
// Title: Variable Store Unit Tests
// Description: Unit tests for set/get/overwrite semantics, case-sensitive
//              keys, undefined-variable errors, and stable enumeration.
// Author: mkoester
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16

package vars

import (
	"testing"

	axerror "github.com/mkoester/axisctl/core/error"
)

func TestSetAndGet(t *testing.T) {
	store := New(nil)

	store.Set("feed", "1200")
	value, err := store.Get("feed")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if value != "1200" {
		t.Errorf("Expected 1200, got %q", value)
	}

	// Last write wins
	store.Set("feed", "1500")
	value, _ = store.Get("feed")
	if value != "1500" {
		t.Errorf("Expected overwrite to 1500, got %q", value)
	}
}

func TestKeysAreCaseSensitive(t *testing.T) {
	store := New(nil)
	store.Set("Feed", "100")

	if _, err := store.Get("feed"); !axerror.HasCode(err, axerror.CodeUndefinedVariable) {
		t.Errorf("Expected UNDEFINED_VARIABLE for wrong case, got %v", err)
	}
	if value, err := store.Get("Feed"); err != nil || value != "100" {
		t.Errorf("Expected exact-case hit, got %q, %v", value, err)
	}
}

func TestGetUndefined(t *testing.T) {
	store := New(nil)

	_, err := store.Get("missing")
	if err == nil {
		t.Fatal("Expected error for undefined variable")
	}
	if !axerror.HasCode(err, axerror.CodeUndefinedVariable) {
		t.Errorf("Expected UNDEFINED_VARIABLE, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	store := New(nil)
	store.Set("speed", "50")

	if value, ok := store.Lookup("speed"); !ok || value != "50" {
		t.Errorf("Expected hit, got %q, %v", value, ok)
	}
	if _, ok := store.Lookup("unset"); ok {
		t.Error("Expected miss for unset key")
	}
}

func TestPairsStableOrder(t *testing.T) {
	store := New(nil)
	store.Set("zeta", "3")
	store.Set("alpha", "1")
	store.Set("mid", "2")

	pairs := store.Pairs()
	if len(pairs) != 3 {
		t.Fatalf("Expected 3 pairs, got %d", len(pairs))
	}

	expected := []string{"alpha", "mid", "zeta"}
	for i, key := range expected {
		if pairs[i].Key != key {
			t.Errorf("Position %d: expected %s, got %s", i, key, pairs[i].Key)
		}
	}

	if store.Len() != 3 {
		t.Errorf("Expected length 3, got %d", store.Len())
	}
}
