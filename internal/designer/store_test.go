package designer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	s := NewSession("prod-1")

	if err := store.Put(ctx, s, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != s.ID || got.Customization != s.Customization {
		t.Fatalf("stored session differs: got %+v want %+v", got, s)
	}

	// Mutating the returned copy must not affect the stored session.
	got.Customization.ClubName = "MUTATED"
	again, err := store.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Customization.ClubName == "MUTATED" {
		t.Fatalf("store returned aliased session")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()

	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	s := NewSession("prod-1")

	if err := store.Put(ctx, s, -time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	store, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	s := NewSession("prod-1")

	if err := store.Put(ctx, s, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestNewStoreRejectsUnknownProvider(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(context.Background(), StoreConfig{Provider: "postgres"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
