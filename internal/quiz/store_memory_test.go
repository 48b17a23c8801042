package quiz

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now().UTC()
	s := Session{ID: "s-1", Responses: Responses{Background: "tech"}, CreatedAt: now, UpdatedAt: now}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Responses.Background != "tech" {
		t.Fatalf("unexpected responses %+v", got.Responses)
	}
}

func TestMemoryStoreExpiresStaleSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created := time.Now().UTC()
	s := Session{ID: "old", CreatedAt: created, UpdatedAt: created}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	store.now = func() time.Time { return created.Add(Freshness + time.Minute) }
	if _, err := store.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale session should read as missing, got %v", err)
	}
}

func TestMemoryStoreIsolatesStoredResponses(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now().UTC()
	s := Session{ID: "s-2", Responses: Responses{CurrentSkills: []string{"Go"}}, CreatedAt: now, UpdatedAt: now}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Responses.CurrentSkills[0] = "mutated"

	got, err := store.Get(ctx, "s-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Responses.CurrentSkills[0] != "Go" {
		t.Fatal("stored session aliases caller memory")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now().UTC()
	if err := store.Save(ctx, Session{ID: "s-3", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx, "s-3"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s-3"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
