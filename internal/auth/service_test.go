package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfwise/shelfwise/internal/identity"
	"github.com/shelfwise/shelfwise/internal/session"
)

func newTestService() (*Service, session.Store) {
	sessions := session.NewMemoryStore(0)
	return NewService(identity.NewMemoryRepository(), sessions), sessions
}

func TestRegisterThenLogin(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "A", "a@x.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected registration to establish a session")
	}

	snap, err := sessions.Get(ctx, token)
	if err != nil {
		t.Fatalf("session lookup: %v", err)
	}
	if snap.UserID != user.ID || snap.Email != "a@x.com" {
		t.Fatalf("session snapshot mismatch: %+v", snap)
	}

	_, loginToken, err := svc.Login(ctx, "a@x.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginToken == token {
		t.Fatalf("expected a fresh session token per login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "A", "a@x.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register(ctx, "B", "a@x.com", "other"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// The first registration must remain the only identity for that email.
	_, _, err := svc.Login(ctx, "a@x.com", "secret")
	if err != nil {
		t.Fatalf("login with original password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@x.com", "other"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for losing registration, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	if _, _, err := svc.Login(context.Background(), "missing@x.com", "secret"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "A", "a@x.com", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "A", "a@x.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := sessions.Get(ctx, token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected session gone after logout, got %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout of destroyed token must succeed, got %v", err)
	}
	if err := svc.Logout(ctx, "never-issued"); err != nil {
		t.Fatalf("logout of unknown token must succeed, got %v", err)
	}
	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("logout without a token must succeed, got %v", err)
	}
}
