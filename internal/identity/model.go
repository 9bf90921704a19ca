package identity

import (
	"errors"
	"time"
)

// User represents a registered library-system account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert would violate the
	// unique constraint on email.
	ErrDuplicateEmail = errors.New("email already registered")
)
