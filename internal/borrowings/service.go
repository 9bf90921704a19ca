package borrowings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/shelfwise/internal/books"
	"github.com/shelfwise/shelfwise/internal/members"
)

const defaultLoanPeriod = 14 * 24 * time.Hour

// Service coordinates borrowings with the book catalog and the member roster.
type Service struct {
	repo    Repository
	books   books.Repository
	members members.Repository
}

// NewService creates the borrowing service.
func NewService(repo Repository, bookRepo books.Repository, memberRepo members.Repository) *Service {
	return &Service{repo: repo, books: bookRepo, members: memberRepo}
}

// CreateInput carries the fields of the new-borrowing form.
type CreateInput struct {
	BookID   string
	MemberID string
	DueDate  time.Time
}

// Create checks out a book after verifying the book and member exist. A zero
// due date falls back to the default loan period.
func (s *Service) Create(ctx context.Context, in CreateInput) (Borrowing, error) {
	if _, err := s.books.FindByID(ctx, in.BookID); err != nil {
		if errors.Is(err, books.ErrNotFound) {
			return Borrowing{}, ErrUnknownBook
		}
		return Borrowing{}, fmt.Errorf("lookup book: %w", err)
	}
	if _, err := s.members.FindByID(ctx, in.MemberID); err != nil {
		if errors.Is(err, members.ErrNotFound) {
			return Borrowing{}, ErrUnknownMember
		}
		return Borrowing{}, fmt.Errorf("lookup member: %w", err)
	}

	now := time.Now().UTC()
	due := in.DueDate
	if due.IsZero() {
		due = now.Add(defaultLoanPeriod)
	}

	borrowing := Borrowing{
		ID:         uuid.New().String(),
		BookID:     in.BookID,
		MemberID:   in.MemberID,
		BorrowedAt: now,
		DueDate:    due,
	}
	if err := s.repo.Create(ctx, borrowing); err != nil {
		return Borrowing{}, fmt.Errorf("create borrowing: %w", err)
	}
	return borrowing, nil
}

// Return marks a borrowing as returned. Returning twice keeps the first
// return timestamp.
func (s *Service) Return(ctx context.Context, id string) error {
	borrowing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if borrowing.Returned() {
		return nil
	}
	return s.repo.MarkReturned(ctx, id, time.Now().UTC())
}

// Delete removes a borrowing record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListDetails returns borrowings enriched with book titles and member names
// for display. Records whose book or member has since been deleted still
// appear, with blank display fields.
func (s *Service) ListDetails(ctx context.Context) ([]Detail, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list borrowings: %w", err)
	}

	out := make([]Detail, 0, len(list))
	for _, borrowing := range list {
		detail := Detail{Borrowing: borrowing}
		if book, err := s.books.FindByID(ctx, borrowing.BookID); err == nil {
			detail.BookTitle = book.Title
		}
		if member, err := s.members.FindByID(ctx, borrowing.MemberID); err == nil {
			detail.MemberName = member.Name
		}
		out = append(out, detail)
	}
	return out, nil
}
