package employees

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	employees map[string]Employee
}

// NewMemoryRepository builds an in-memory employee store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{employees: make(map[string]Employee)}
}

func (r *memoryRepository) List(_ context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		out = append(out, employee)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employee, ok := r.employees[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return employee, nil
}

func (r *memoryRepository) Create(_ context.Context, employee Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[employee.ID] = employee
	return nil
}

func (r *memoryRepository) Update(_ context.Context, employee Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[employee.ID]; !ok {
		return ErrNotFound
	}
	r.employees[employee.ID] = employee
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return ErrNotFound
	}
	delete(r.employees, id)
	return nil
}
