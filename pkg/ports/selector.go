package ports

import (
	"context"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/window"
)

// Selector performs one synchronous selector invocation.
//
// It renders options through the configuration w and blocks until an answer is
// read back. In index mode an unusable reply yields an Answer with empty Text and
// domain.NoIndex, never an error. Failures to spawn, communicate with, or cleanly
// finish the process are returned as *domain.InvocationError.
type Selector interface {
	Select(ctx context.Context, w window.Window, options []string) (domain.Answer, error)
}

// SelectorFunc adapts a plain function to Selector.
type SelectorFunc func(ctx context.Context, w window.Window, options []string) (domain.Answer, error)

// Select invokes f.
func (f SelectorFunc) Select(ctx context.Context, w window.Window, options []string) (domain.Answer, error) {
	return f(ctx, w, options)
}
