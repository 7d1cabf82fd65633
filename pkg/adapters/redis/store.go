package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/rofiflow/pkg/todo"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces the keys written by Store.
const DefaultPrefix = "rofiflow:todo:"

// maxRetries bounds optimistic transactions that lose a WATCH race.
const maxRetries = 5

// ErrConflict is returned when a Replace keeps racing with other writers.
var ErrConflict = errors.New("todo list modified concurrently")

// Store implements todo.Store using a Redis list of JSON-encoded items.
type Store struct {
	client *backend.Client
	prefix string
	list   string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration of the list, refreshed on every write.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithList selects a named list, so several lists can share one database.
func WithList(name string) Option {
	return func(s *Store) {
		s.list = name
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
		list:   "default",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Key returns the Redis key holding the list.
func (s *Store) Key() string {
	return s.prefix + s.list
}

// Add appends an item.
func (s *Store) Add(ctx context.Context, item todo.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, s.Key(), data)
	s.touch(ctx, pipe)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add to redis: %w", err)
	}
	return nil
}

// List returns all items in insertion order.
func (s *Store) List(ctx context.Context) ([]todo.Item, error) {
	vals, err := s.client.LRange(ctx, s.Key(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list from redis: %w", err)
	}
	return decode(vals)
}

// Remove deletes the first matching item.
func (s *Store) Remove(ctx context.Context, item todo.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	pipe := s.client.TxPipeline()
	removed := pipe.LRem(ctx, s.Key(), 1, data)
	s.touch(ctx, pipe)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove from redis: %w", err)
	}
	if removed.Val() == 0 {
		return todo.ErrNotFound
	}
	return nil
}

// Replace swaps the first item matching old, inside a WATCH transaction.
func (s *Store) Replace(ctx context.Context, old, updated todo.Item) error {
	oldData, err := json.Marshal(old)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	newData, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	key := s.Key()
	txf := func(tx *backend.Tx) error {
		vals, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return err
		}
		pos := -1
		for i, v := range vals {
			if v == string(oldData) {
				pos = i
				break
			}
		}
		if pos < 0 {
			return todo.ErrNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
			pipe.LSet(ctx, key, int64(pos), newData)
			s.touch(ctx, pipe)
			return nil
		})
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, backend.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, todo.ErrNotFound) {
			return fmt.Errorf("failed to replace in redis: %w", err)
		}
		return err
	}
	return ErrConflict
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) touch(ctx context.Context, pipe backend.Pipeliner) {
	if s.ttl > 0 {
		pipe.Expire(ctx, s.Key(), s.ttl)
	}
}

func decode(vals []string) ([]todo.Item, error) {
	items := make([]todo.Item, 0, len(vals))
	for _, v := range vals {
		var item todo.Item
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
