// Package session holds the server-side session store. A session correlates
// an opaque cookie token with a snapshot of the signed-in user. Tokens are in
// exactly one of two states, absent or active: Create moves absent -> active,
// Destroy moves active -> absent, and nothing else transitions them.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// tokenBytes is the entropy of a session token. The encoded token is
// roughly 4/3 times longer.
const tokenBytes = 32

// ErrNotFound is returned by Get when the token is absent from the store.
var ErrNotFound = errors.New("session not found")

// Snapshot is the identity copy stored against a session token. It carries
// display fields only; sensitive material such as the password hash stays in
// the user repository and is re-fetched when needed.
type Snapshot struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages session lifecycle. Implementations are safe for concurrent
// use; operations on distinct tokens are independent.
type Store interface {
	// Create generates an unguessable token and stores the snapshot under it.
	Create(ctx context.Context, snap Snapshot) (string, error)

	// Get resolves a token to its snapshot. ErrNotFound for absent tokens.
	// Get has no side effects: it never extends or shortens the session.
	Get(ctx context.Context, token string) (Snapshot, error)

	// Destroy removes the token. Destroying an absent token is not an error.
	Destroy(ctx context.Context, token string) error
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
