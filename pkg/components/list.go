package components

import (
	"context"
	"log/slog"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/aretw0/rofiflow/pkg/window"
)

// ItemList is a selection of items backed by type T. Every item runs the same callback.
type ItemList[T domain.Item[T]] struct {
	base
	items    []T
	callback domain.ItemCallback[T]
}

// NewItemList creates an ItemList. A nil callback accepts every item.
func NewItemList[T domain.Item[T]](sel ports.Selector, items []T, callback domain.ItemCallback[T]) *ItemList[T] {
	return &ItemList[T]{
		base:     newBase("ItemList", sel),
		items:    items,
		callback: callback,
	}
}

// Window replaces the request configuration. Prompt and lines are still set per display.
func (l *ItemList[T]) Window(w window.Window) *ItemList[T] {
	l.window = w
	return l
}

// Hooks registers observability hooks.
func (l *ItemList[T]) Hooks(hooks domain.LifecycleHooks) *ItemList[T] {
	l.hooks = hooks
	return l
}

// Logger sets the structured logger.
func (l *ItemList[T]) Logger(logger *slog.Logger) *ItemList[T] {
	l.logger = logger
	return l
}

// Clone duplicates the list, its items and its callback.
func (l *ItemList[T]) Clone() *ItemList[T] {
	c := *l
	c.items = domain.CloneItems(l.items)
	if l.callback != nil {
		c.callback = l.callback.Clone()
	}
	return &c
}

// Options returns the option set: display forms, then "" and "[cancel]".
func (l *ItemList[T]) Options() []string {
	options := domain.DisplayForms(l.items)
	return append(options, domain.EmptyAnswer, domain.CancelEntry)
}

// Display shows the list and classifies the answer.
// Unmatched free text is returned as a Selection rather than an error.
func (l *ItemList[T]) Display(ctx context.Context, prompt string) domain.Outcome {
	options := l.Options()
	answer, err := l.show(ctx, prompt, options, len(options))
	if err != nil {
		return l.finish(ctx, answer.Text, domain.Error{Message: InputErrorMessage})
	}
	return l.finish(ctx, answer.Text, l.Classify(answer.Text))
}

// Classify maps an answer to an Outcome, running the item callback on a match.
func (l *ItemList[T]) Classify(answer string) domain.Outcome {
	switch answer {
	case domain.EmptyAnswer, domain.CancelEntry:
		return domain.Cancel{}
	case domain.BlankEntry:
		return domain.Blank{}
	}

	if i := matchItem(l.items, answer); i >= 0 {
		if l.callback == nil {
			return domain.Selection{Value: answer}
		}
		item := l.items[i].Clone()
		return runCallback(func() error { return l.callback.Call(item) }, domain.Selection{Value: answer})
	}

	return domain.Selection{Value: answer}
}
