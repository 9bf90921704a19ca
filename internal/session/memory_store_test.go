package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	snap := Snapshot{UserID: "u1", Name: "A", Email: "a@x.com", CreatedAt: time.Now().UTC()}
	token, err := store.Create(ctx, snap)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != snap.UserID {
		t.Fatalf("expected user %s, got %s", snap.UserID, got.UserID)
	}

	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after destroy, got %v", err)
	}
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("second destroy must succeed, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	token, err := store.Create(ctx, Snapshot{UserID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(0)

	if _, err := store.Get(context.Background(), "never-issued"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
