package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/rofiflow/pkg/todo"
)

// DefaultPath is used when New is given an empty path.
var DefaultPath = filepath.Join(".rofiflow", "todo.json")

// Store implements todo.Store using a single JSON file.
// The whole list is rewritten on every change.
type Store struct {
	Path string
	mu   sync.Mutex
}

// New creates a new Store backed by path.
// If path is empty, it defaults to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Add appends an item.
func (s *Store) Add(ctx context.Context, item todo.Item) error {
	return s.update(func(items []todo.Item) ([]todo.Item, error) {
		return append(items, item), nil
	})
}

// List returns all items. A missing file is an empty list.
func (s *Store) List(ctx context.Context) ([]todo.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Remove deletes the first matching item.
func (s *Store) Remove(ctx context.Context, item todo.Item) error {
	return s.update(func(items []todo.Item) ([]todo.Item, error) {
		i := indexOf(items, item)
		if i < 0 {
			return nil, todo.ErrNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

// Replace swaps the first item matching old.
func (s *Store) Replace(ctx context.Context, old, updated todo.Item) error {
	return s.update(func(items []todo.Item) ([]todo.Item, error) {
		i := indexOf(items, old)
		if i < 0 {
			return nil, todo.ErrNotFound
		}
		items[i] = updated
		return items, nil
	})
}

func (s *Store) update(fn func([]todo.Item) ([]todo.Item, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return s.save(items)
}

func (s *Store) load() ([]todo.Item, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []todo.Item{}, nil
		}
		return nil, fmt.Errorf("failed to read todo file: %w", err)
	}

	items := []todo.Item{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todo file: %w", err)
	}
	return items, nil
}

// save writes to a temp file in the same directory, fsyncs it and renames it over Path.
func (s *Store) save(items []todo.Item) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure todo directory: %w", err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal todo items: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows can't rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename does not replace an existing file on Windows.
	if _, err := os.Stat(s.Path); err == nil {
		if err := os.Remove(s.Path); err != nil {
			return fmt.Errorf("failed to remove existing todo file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func indexOf(items []todo.Item, item todo.Item) int {
	for i, existing := range items {
		if existing == item {
			return i
		}
	}
	return -1
}
