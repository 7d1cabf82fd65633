package ports

import (
	"context"
	"testing"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ReplyingSelector builds a Selector whose process prints reply on stdout and exits 0.
type ReplyingSelector func(t *testing.T, reply string) Selector

// RunSelectorContract runs a suite of tests to verify that a Selector implementation
// parses replies according to the invocation protocol.
func RunSelectorContract(t *testing.T, newSelector ReplyingSelector) {
	ctx := context.Background()
	options := []string{"Entry 1", "Entry 2", "Entry 3", "", domain.CancelEntry}

	t.Run("Text Reply Is Trimmed", func(t *testing.T) {
		sel := newSelector(t, "  Entry 2 \n")
		answer, err := sel.Select(ctx, window.New("p").Format(window.FormatText), options)
		require.NoError(t, err)
		assert.Equal(t, "Entry 2", answer.Text)
		assert.Equal(t, 1, answer.Index)
	})

	t.Run("Free Text Is Returned Verbatim", func(t *testing.T) {
		sel := newSelector(t, "something else\n")
		answer, err := sel.Select(ctx, window.New("p").Format(window.FormatText), options)
		require.NoError(t, err)
		assert.Equal(t, "something else", answer.Text)
		assert.Equal(t, domain.NoIndex, answer.Index)
	})

	t.Run("Index Reply Resolves Option", func(t *testing.T) {
		sel := newSelector(t, "4\n")
		answer, err := sel.Select(ctx, window.New("p").Format(window.FormatIndex), options)
		require.NoError(t, err)
		assert.Equal(t, domain.CancelEntry, answer.Text)
		assert.Equal(t, 4, answer.Index)
	})

	t.Run("Unusable Index Means No Answer", func(t *testing.T) {
		for _, reply := range []string{"-1", "17", "not-a-number", ""} {
			sel := newSelector(t, reply)
			answer, err := sel.Select(ctx, window.New("p"), options)
			require.NoError(t, err, reply)
			assert.Equal(t, "", answer.Text, reply)
			assert.Equal(t, domain.NoIndex, answer.Index, reply)
		}
	})
}
