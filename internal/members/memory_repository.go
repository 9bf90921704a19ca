package members

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	members map[string]Member
}

// NewMemoryRepository builds an in-memory member store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{members: make(map[string]Member)}
}

func (r *memoryRepository) List(_ context.Context) ([]Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Member, 0, len(r.members))
	for _, member := range r.members {
		out = append(out, member)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	member, ok := r.members[id]
	if !ok {
		return Member{}, ErrNotFound
	}
	return member, nil
}

func (r *memoryRepository) Create(_ context.Context, member Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[member.ID] = member
	return nil
}

func (r *memoryRepository) Update(_ context.Context, member Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[member.ID]; !ok {
		return ErrNotFound
	}
	r.members[member.ID] = member
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return ErrNotFound
	}
	delete(r.members, id)
	return nil
}
