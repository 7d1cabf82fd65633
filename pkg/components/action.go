package components

import (
	"context"
	"log/slog"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/aretw0/rofiflow/pkg/window"
)

// ActionList is a selection of action labels that operate on a single item.
// The callback cannot hand back a modified item; hosts persist changes themselves.
type ActionList[T domain.Item[T]] struct {
	base
	item     T
	actions  []string
	callback domain.ActionCallback[T]
}

// NewActionList creates an ActionList. A nil callback accepts every action.
func NewActionList[T domain.Item[T]](sel ports.Selector, item T, actions []string, callback domain.ActionCallback[T]) *ActionList[T] {
	return &ActionList[T]{
		base:     newBase("ActionList", sel),
		item:     item,
		actions:  actions,
		callback: callback,
	}
}

// Window replaces the request configuration. Prompt and lines are still set per display.
func (l *ActionList[T]) Window(w window.Window) *ActionList[T] {
	l.window = w
	return l
}

// Hooks registers observability hooks.
func (l *ActionList[T]) Hooks(hooks domain.LifecycleHooks) *ActionList[T] {
	l.hooks = hooks
	return l
}

// Logger sets the structured logger.
func (l *ActionList[T]) Logger(logger *slog.Logger) *ActionList[T] {
	l.logger = logger
	return l
}

// Clone duplicates the list, its item, its labels and its callback.
func (l *ActionList[T]) Clone() *ActionList[T] {
	c := *l
	c.item = l.item.Clone()
	c.actions = append([]string(nil), l.actions...)
	if l.callback != nil {
		c.callback = l.callback.Clone()
	}
	return &c
}

// Options returns the option set: action labels, then "" and "[cancel]".
func (l *ActionList[T]) Options() []string {
	options := make([]string, 0, len(l.actions)+2)
	options = append(options, l.actions...)
	return append(options, domain.EmptyAnswer, domain.CancelEntry)
}

// Display shows the actions and classifies the answer.
func (l *ActionList[T]) Display(ctx context.Context, prompt string) domain.Outcome {
	options := l.Options()
	answer, err := l.show(ctx, prompt, options, len(options))
	if err != nil {
		return l.finish(ctx, answer.Text, domain.Error{Message: InputErrorMessage})
	}
	return l.finish(ctx, answer.Text, l.Classify(answer.Text))
}

// Classify maps an answer to an Outcome. Listed labels and free text alike are
// handed to the callback as an action name; free text is a custom action the
// callback may reject.
func (l *ActionList[T]) Classify(answer string) domain.Outcome {
	switch answer {
	case domain.EmptyAnswer, domain.CancelEntry:
		return domain.Cancel{}
	case domain.BlankEntry:
		return domain.Blank{}
	}

	if l.callback == nil {
		return domain.Action{Value: answer}
	}
	return runCallback(func() error { return l.callback.Call(l.item, answer) }, domain.Action{Value: answer})
}

// Has reports whether label is one of the listed actions.
func (l *ActionList[T]) Has(label string) bool {
	return matchLabel(l.actions, label) >= 0
}
