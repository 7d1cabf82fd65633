package components

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/aretw0/rofiflow/pkg/window"
)

// EntryBox is a window with zero rows, used to take free-text input.
type EntryBox struct {
	base
}

// NewEntryBox creates an EntryBox.
func NewEntryBox(sel ports.Selector) *EntryBox {
	b := newBase("EntryBox", sel)
	b.window = window.New(b.name).Lines(0).Format(window.FormatText)
	return &EntryBox{base: b}
}

// Window replaces the request configuration. Zero rows and text mode are always enforced.
func (e *EntryBox) Window(w window.Window) *EntryBox {
	e.window = w
	return e
}

// Hooks registers observability hooks.
func (e *EntryBox) Hooks(hooks domain.LifecycleHooks) *EntryBox {
	e.hooks = hooks
	return e
}

// Logger sets the structured logger.
func (e *EntryBox) Logger(logger *slog.Logger) *EntryBox {
	e.logger = logger
	return e
}

// Capture returns the trimmed text typed by the user. Empty text is returned as is;
// interpreting it (usually as cancel) is up to the caller.
func (e *EntryBox) Capture(ctx context.Context, prompt string) (string, error) {
	w := e.window.Prompt(prompt).Lines(0).Format(window.FormatText)
	answer, err := e.invoke(ctx, w, []string{""})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer.Text), nil
}

// Display captures text and wraps it: Cancel when empty, Selection otherwise.
func (e *EntryBox) Display(ctx context.Context, prompt string) domain.Outcome {
	text, err := e.Capture(ctx, prompt)
	if err != nil {
		return e.finish(ctx, "", domain.Error{Message: InputErrorMessage})
	}
	if text == "" {
		return e.finish(ctx, text, domain.Cancel{})
	}
	return e.finish(ctx, text, domain.Selection{Value: text})
}
