package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/rofiflow/pkg/adapters/redis"
	"github.com/aretw0/rofiflow/pkg/todo"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	todo.RunStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_Keys(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	work := redis.NewFromClient(client, redis.WithPrefix("test:"), redis.WithList("work"))
	home := redis.NewFromClient(client, redis.WithPrefix("test:"), redis.WithList("home"))

	require.NoError(t, work.Add(ctx, todo.New("ship it")))
	assert.Equal(t, "test:work", work.Key())
	assert.True(t, mr.Exists("test:work"))

	items, err := home.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	stored, err := mr.List("test:work")
	require.NoError(t, err)
	assert.Equal(t, []string{`{"task":"ship it","status":"TODO"}`}, stored)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	require.NoError(t, store.Add(ctx, todo.New("ephemeral")))

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	mr.FastForward(2 * time.Second)

	items, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	_, err := mr.Push(store.Key(), "{broken")
	require.NoError(t, err)

	_, err = store.List(context.Background())
	assert.Error(t, err)
}
