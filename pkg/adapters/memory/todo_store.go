package memory

import (
	"context"
	"sync"

	"github.com/aretw0/rofiflow/pkg/todo"
)

// TodoStore implements todo.Store in memory.
// Safe for concurrent use.
type TodoStore struct {
	items []todo.Item
	mu    sync.RWMutex
}

// NewTodoStore creates a store holding the given items.
func NewTodoStore(items ...todo.Item) *TodoStore {
	return &TodoStore{items: append([]todo.Item(nil), items...)}
}

// Add appends an item.
func (s *TodoStore) Add(ctx context.Context, item todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return nil
}

// List returns a copy so callers can't mutate the store.
func (s *TodoStore) List(ctx context.Context) ([]todo.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]todo.Item{}, s.items...), nil
}

// Remove deletes the first matching item.
func (s *TodoStore) Remove(ctx context.Context, item todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return todo.ErrNotFound
}

// Replace swaps the first item matching old.
func (s *TodoStore) Replace(ctx context.Context, old, updated todo.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing == old {
			s.items[i] = updated
			return nil
		}
	}
	return todo.ErrNotFound
}
