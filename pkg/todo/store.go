package todo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an item is not in the store.
var ErrNotFound = errors.New("todo item not found")

// Store persists the ordered to-do list.
// Items are matched by task and status.
type Store interface {
	// Add appends an item.
	Add(ctx context.Context, item Item) error

	// List returns all items in insertion order.
	List(ctx context.Context) ([]Item, error)

	// Remove deletes the first matching item, or returns ErrNotFound.
	Remove(ctx context.Context, item Item) error

	// Replace swaps the first item matching old for updated, keeping its position.
	// Returns ErrNotFound when old is missing.
	Replace(ctx context.Context, old, updated Item) error
}
