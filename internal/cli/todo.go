package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/rofiflow/pkg/adapters/file"
	"github.com/aretw0/rofiflow/pkg/adapters/memory"
	"github.com/aretw0/rofiflow/pkg/adapters/redis"
	"github.com/aretw0/rofiflow/pkg/todo"
)

// Store backends accepted by --store.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// StoreOptions selects and configures the to-do store.
type StoreOptions struct {
	Kind          string
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	List          string
	TTL           time.Duration
}

// NewStore creates the store named by opts.Kind. The returned func releases it.
func NewStore(opts StoreOptions) (todo.Store, func() error, error) {
	noop := func() error { return nil }

	switch opts.Kind {
	case StoreMemory:
		return memory.NewTodoStore(), noop, nil
	case "", StoreFile:
		return file.New(opts.Path), noop, nil
	case StoreRedis:
		redisOpts := []redis.Option{}
		if opts.List != "" {
			redisOpts = append(redisOpts, redis.WithList(opts.List))
		}
		if opts.TTL > 0 {
			redisOpts = append(redisOpts, redis.WithTTL(opts.TTL))
		}
		store := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, redisOpts...)
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %s, %s or %s)", opts.Kind, StoreMemory, StoreFile, StoreRedis)
	}
}

// RunTodo runs the to-do app until the user exits.
func RunTodo(ctx context.Context, env *Env, store todo.Store) error {
	app := todo.NewApp(env.Selector, store,
		todo.WithLogger(env.Logger),
		todo.WithHooks(env.Hooks),
	)
	err := app.Run(ctx)
	if IsInterrupted(err) {
		return nil
	}
	return err
}

// ListTodo writes the items as markdown, rendered when render is non-nil.
func ListTodo(ctx context.Context, store todo.Store, w io.Writer, render func(string) (string, error)) error {
	items, err := store.List(ctx)
	if err != nil {
		return err
	}

	md := todo.Markdown(todo.RootPrompt, items)
	if render != nil {
		if md, err = render(md); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, md)
	return err
}
