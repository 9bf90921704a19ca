package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/shelfwise/internal/identity"
	"github.com/shelfwise/shelfwise/internal/session"
)

// Failure kinds surfaced to the screens. Anything else coming out of the
// service is an unexpected store failure and renders as a generic error.
var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// Service orchestrates registration, login and logout against the user
// repository and the session store.
type Service struct {
	users    identity.Repository
	sessions session.Store
}

// NewService creates the auth service.
func NewService(users identity.Repository, sessions session.Store) *Service {
	return &Service{users: users, sessions: sessions}
}

// Register creates a new account and signs it in immediately. The returned
// token identifies the fresh session.
func (s *Service) Register(ctx context.Context, name, email, password string) (identity.User, string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return identity.User{}, "", ErrUserExists
	}
	if !errors.Is(err, identity.ErrNotFound) {
		return identity.User{}, "", fmt.Errorf("lookup email: %w", err)
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return identity.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := identity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration may win the race after the lookup above;
		// the storage-level unique constraint is the authority.
		if errors.Is(err, identity.ErrDuplicateEmail) {
			return identity.User{}, "", ErrUserExists
		}
		return identity.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return identity.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and establishes a session on success.
func (s *Service) Login(ctx context.Context, email, password string) (identity.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return identity.User{}, "", ErrUserNotFound
		}
		return identity.User{}, "", fmt.Errorf("lookup email: %w", err)
	}

	if !identity.VerifyPassword(password, user.PasswordHash) {
		return identity.User{}, "", ErrInvalidPassword
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return identity.User{}, "", err
	}
	return user, token, nil
}

// Logout destroys the session behind token. Destroying an absent or already
// destroyed token succeeds; only a true store failure is an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *Service) startSession(ctx context.Context, user identity.User) (string, error) {
	token, err := s.sessions.Create(ctx, session.Snapshot{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}
