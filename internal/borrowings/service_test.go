package borrowings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/shelfwise/internal/books"
	"github.com/shelfwise/shelfwise/internal/members"
)

func newTestService(t *testing.T) (*Service, books.Book, members.Member) {
	t.Helper()
	ctx := context.Background()

	bookRepo := books.NewMemoryRepository()
	book := books.Book{ID: uuid.New().String(), Title: "The Go Programming Language", CreatedAt: time.Now()}
	if err := bookRepo.Create(ctx, book); err != nil {
		t.Fatalf("create book: %v", err)
	}

	memberRepo := members.NewMemoryRepository()
	member := members.Member{ID: uuid.New().String(), Name: "A", CreatedAt: time.Now()}
	if err := memberRepo.Create(ctx, member); err != nil {
		t.Fatalf("create member: %v", err)
	}

	return NewService(NewMemoryRepository(), bookRepo, memberRepo), book, member
}

func TestCreateAndListDetails(t *testing.T) {
	svc, book, member := newTestService(t)
	ctx := context.Background()

	borrowing, err := svc.Create(ctx, CreateInput{BookID: book.ID, MemberID: member.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if borrowing.DueDate.Before(borrowing.BorrowedAt) {
		t.Fatalf("due date %v precedes borrow date %v", borrowing.DueDate, borrowing.BorrowedAt)
	}

	details, err := svc.ListDetails(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 borrowing, got %d", len(details))
	}
	if details[0].BookTitle != book.Title || details[0].MemberName != member.Name {
		t.Fatalf("expected enriched detail, got %+v", details[0])
	}
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	svc, book, member := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{BookID: uuid.New().String(), MemberID: member.ID}); !errors.Is(err, ErrUnknownBook) {
		t.Fatalf("expected ErrUnknownBook, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{BookID: book.ID, MemberID: uuid.New().String()}); !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("expected ErrUnknownMember, got %v", err)
	}
}

func TestReturnKeepsFirstTimestamp(t *testing.T) {
	svc, book, member := newTestService(t)
	ctx := context.Background()

	borrowing, err := svc.Create(ctx, CreateInput{BookID: book.ID, MemberID: member.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Return(ctx, borrowing.ID); err != nil {
		t.Fatalf("return: %v", err)
	}
	details, err := svc.ListDetails(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	first := details[0].ReturnedAt
	if first == nil {
		t.Fatalf("expected returned_at to be set")
	}

	if err := svc.Return(ctx, borrowing.ID); err != nil {
		t.Fatalf("second return: %v", err)
	}
	details, err = svc.ListDetails(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !details[0].ReturnedAt.Equal(*first) {
		t.Fatalf("expected return timestamp to be stable")
	}
}

func TestReturnUnknownBorrowing(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.Return(context.Background(), uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
