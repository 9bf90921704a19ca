package books

import (
	"errors"
	"time"
)

// Book is a catalog entry.
type Book struct {
	ID          string
	Title       string
	Author      string
	Genre       string
	Year        int
	Description string
	CreatedAt   time.Time
}

// ErrNotFound is returned when no book matches the lookup key.
var ErrNotFound = errors.New("book not found")
