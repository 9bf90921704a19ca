package borrowings

import (
	"errors"
	"time"
)

// Borrowing records a book checked out by a member.
type Borrowing struct {
	ID         string
	BookID     string
	MemberID   string
	BorrowedAt time.Time
	DueDate    time.Time
	ReturnedAt *time.Time
}

// Returned reports whether the book came back.
func (b Borrowing) Returned() bool {
	return b.ReturnedAt != nil
}

// Detail is a borrowing enriched with display fields for the screens.
type Detail struct {
	Borrowing
	BookTitle  string
	MemberName string
}

var (
	// ErrNotFound is returned when no borrowing matches the lookup key.
	ErrNotFound = errors.New("borrowing not found")

	// ErrUnknownBook rejects a borrowing for a book that does not exist.
	ErrUnknownBook = errors.New("unknown book")

	// ErrUnknownMember rejects a borrowing for a member that does not exist.
	ErrUnknownMember = errors.New("unknown member")
)
