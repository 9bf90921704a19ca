package members

import (
	"errors"
	"time"
)

// Member is a registered library patron.
type Member struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// ErrNotFound is returned when no member matches the lookup key.
var ErrNotFound = errors.New("member not found")
