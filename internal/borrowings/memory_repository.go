package borrowings

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu         sync.RWMutex
	borrowings map[string]Borrowing
}

// NewMemoryRepository builds an in-memory borrowing store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{borrowings: make(map[string]Borrowing)}
}

func (r *memoryRepository) List(_ context.Context) ([]Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Borrowing, 0, len(r.borrowings))
	for _, borrowing := range r.borrowings {
		out = append(out, borrowing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BorrowedAt.After(out[j].BorrowedAt) })
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	borrowing, ok := r.borrowings[id]
	if !ok {
		return Borrowing{}, ErrNotFound
	}
	return borrowing, nil
}

func (r *memoryRepository) Create(_ context.Context, borrowing Borrowing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.borrowings[borrowing.ID] = borrowing
	return nil
}

func (r *memoryRepository) MarkReturned(_ context.Context, id string, returnedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	borrowing, ok := r.borrowings[id]
	if !ok {
		return ErrNotFound
	}
	at := returnedAt.UTC()
	borrowing.ReturnedAt = &at
	r.borrowings[id] = borrowing
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.borrowings[id]; !ok {
		return ErrNotFound
	}
	delete(r.borrowings, id)
	return nil
}
