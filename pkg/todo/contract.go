package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the defined interface contract. The store must start empty.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("Empty List", func(t *testing.T) {
		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Add Keeps Order", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, New("buy milk")))
		require.NoError(t, store.Add(ctx, New("walk dog")))
		require.NoError(t, store.Add(ctx, New("write code")))

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Item{New("buy milk"), New("walk dog"), New("write code")}, items)
	})

	t.Run("Replace In Place", func(t *testing.T) {
		done := New("walk dog").Toggled()
		require.NoError(t, store.Replace(ctx, New("walk dog"), done))

		items, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, done, items[1])
		assert.Equal(t, "<s>walk dog</s>", items[1].String())
	})

	t.Run("Replace Missing", func(t *testing.T) {
		err := store.Replace(ctx, New("walk dog"), New("x"))
		assert.ErrorIs(t, err, ErrNotFound, "status is part of the match")
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, New("buy milk")))

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Item{New("walk dog").Toggled(), New("write code")}, items)
	})

	t.Run("Remove Missing", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(ctx, New("buy milk")), ErrNotFound)
	})

	t.Run("Remove Only First Duplicate", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, New("write code")))
		require.NoError(t, store.Remove(ctx, New("write code")))

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Item{New("walk dog").Toggled(), New("write code")}, items)
	})
}
