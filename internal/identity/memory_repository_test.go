package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryRepositoryDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := User{ID: uuid.New().String(), Email: "a@x.com", PasswordHash: []byte("h"), CreatedAt: time.Now()}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := User{ID: uuid.New().String(), Email: "a@x.com", PasswordHash: []byte("h2"), CreatedAt: time.Now()}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected the first user to win, got %s", found.ID)
	}
}

func TestMemoryRepositoryLookups(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "missing@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	user := User{ID: uuid.New().String(), Name: "A", Email: "a@x.com"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Email != user.Email {
		t.Fatalf("expected email %s, got %s", user.Email, byID.Email)
	}
}
