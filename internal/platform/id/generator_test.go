package id

import "testing"

func TestNewRunID(t *testing.T) {
	t.Parallel()

	first, err := NewRunID()
	if err != nil {
		t.Fatalf("NewRunID: %v", err)
	}
	second, err := NewRunID()
	if err != nil {
		t.Fatalf("NewRunID: %v", err)
	}

	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct run ids, got %q twice", first)
	}
}
