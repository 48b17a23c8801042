package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"roadmap-backend/internal/shared/storage/object"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	body := `{"meta":{"roleLabel":"Backend Engineer"}}`
	if err := store.Put(ctx, "personas/complete/mid_tech_backend.json", "application/json", strings.NewReader(body)); err != nil {
		t.Fatalf("put: %v", err)
	}

	rc, err := store.Open(ctx, "personas/complete/mid_tech_backend.json")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != body {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestLocalStoreOpenMissing(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "personas/complete/absent.json")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Open(context.Background(), "../outside.json")
	if err == nil || errors.Is(err, object.ErrNotFound) {
		t.Fatalf("path escape should be rejected outright, got %v", err)
	}
}
