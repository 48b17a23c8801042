package util

import "testing"

func TestHashKeyDeterministic(t *testing.T) {
	a := HashKey(`{"background":"tech","yearsOfExperience":"6"}`)
	b := HashKey(`{"background":"tech","yearsOfExperience":"6"}`)
	if a != b {
		t.Fatalf("same input produced different digests: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashKeyDistinguishesInputs(t *testing.T) {
	if HashKey("entry_tech_backend") == HashKey("mid_tech_backend") {
		t.Fatal("distinct inputs collided")
	}
}
