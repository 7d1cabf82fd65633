package components

import (
	"context"
	"log/slog"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/aretw0/rofiflow/pkg/window"
)

// Page is a main menu: items backed by T, a blank row, action labels and an exit row
// that is appended automatically.
//
// Items should model data; actions should be operations on it or navigation the host
// performs when it receives the Action outcome. Free text that matches nothing goes
// to the fallback (search) callback.
type Page[T domain.Item[T]] struct {
	base
	items     []T
	callback  domain.ItemCallback[T]
	actions   []string
	blank     domain.BlankCallback
	search    domain.SearchCallback
	exitEntry string
	autoLines bool
}

// NewPage creates a single-column page sized to its options.
func NewPage[T domain.Item[T]](sel ports.Selector, items []T, callback domain.ItemCallback[T]) *Page[T] {
	return &Page[T]{
		base:      newBase("AppPage", sel),
		items:     items,
		callback:  callback,
		exitEntry: domain.ExitEntry,
		autoLines: true,
	}
}

// NewSearchPage creates a four-column 640x480 page showing five rows at a time.
// Free text that matches no item or action is passed to search.
func NewSearchPage[T domain.Item[T]](sel ports.Selector, items []T, callback domain.ItemCallback[T], search domain.SearchCallback) *Page[T] {
	p := NewPage(sel, items, callback)
	p.name = "SearchPage"
	p.window = defaultWindow(p.name).Dimensions(window.Dimensions{
		Width:   640,
		Height:  480,
		Lines:   5,
		Columns: 4,
	})
	p.search = search
	p.autoLines = false
	return p
}

// Actions sets the action labels. The exit row is added at display time.
func (p *Page[T]) Actions(labels ...string) *Page[T] {
	p.actions = append([]string(nil), labels...)
	return p
}

// Blank sets the callback run when the blank row is chosen.
func (p *Page[T]) Blank(callback domain.BlankCallback) *Page[T] {
	p.blank = callback
	return p
}

// Search sets the fallback callback run on unmatched free text.
func (p *Page[T]) Search(callback domain.SearchCallback) *Page[T] {
	p.search = callback
	return p
}

// ExitEntry replaces the "[exit]" row label.
func (p *Page[T]) ExitEntry(label string) *Page[T] {
	p.exitEntry = label
	return p
}

// Message sets the line shown beneath the prompt.
func (p *Page[T]) Message(message string) *Page[T] {
	p.window = p.window.Message(message)
	return p
}

// Window replaces the request configuration. The prompt is still set per display.
func (p *Page[T]) Window(w window.Window) *Page[T] {
	p.window = w
	return p
}

// Hooks registers observability hooks.
func (p *Page[T]) Hooks(hooks domain.LifecycleHooks) *Page[T] {
	p.hooks = hooks
	return p
}

// Logger sets the structured logger.
func (p *Page[T]) Logger(logger *slog.Logger) *Page[T] {
	p.logger = logger
	return p
}

// Clone duplicates the page, its items, labels and callbacks.
func (p *Page[T]) Clone() *Page[T] {
	c := *p
	c.items = domain.CloneItems(p.items)
	c.actions = append([]string(nil), p.actions...)
	if p.callback != nil {
		c.callback = p.callback.Clone()
	}
	if p.blank != nil {
		c.blank = p.blank.Clone()
	}
	if p.search != nil {
		c.search = p.search.Clone()
	}
	return &c
}

// Options returns the option set: display forms, the blank row, the action labels
// and finally the exit row.
func (p *Page[T]) Options() []string {
	options := domain.DisplayForms(p.items)
	options = append(options, domain.BlankEntry)
	options = append(options, p.actions...)
	return append(options, p.exitEntry)
}

// Display shows the page and classifies the answer.
func (p *Page[T]) Display(ctx context.Context, prompt string) domain.Outcome {
	options := p.Options()
	lines := -1
	if p.autoLines {
		lines = len(options)
	}
	answer, err := p.show(ctx, prompt, options, lines)
	if err != nil {
		return p.finish(ctx, answer.Text, domain.Error{Message: InputErrorMessage})
	}
	return p.finish(ctx, answer.Text, p.Classify(answer.Text))
}

// Classify maps an answer to an Outcome.
//
// The exit row and the empty answer always win, so the host keeps a terminating
// path whatever the items are. The blank row comes before item and action matching.
// Action labels are returned to the host without running a callback.
func (p *Page[T]) Classify(answer string) domain.Outcome {
	if answer == domain.EmptyAnswer || answer == p.exitEntry {
		return domain.Exit{}
	}

	if answer == domain.BlankEntry {
		if p.blank == nil {
			return domain.Blank{}
		}
		return runCallback(p.blank.Call, domain.Blank{})
	}

	if i := matchItem(p.items, answer); i >= 0 {
		if p.callback == nil {
			return domain.Selection{Value: answer}
		}
		item := p.items[i].Clone()
		return runCallback(func() error { return p.callback.Call(item) }, domain.Selection{Value: answer})
	}

	if matchLabel(p.actions, answer) >= 0 {
		return domain.Action{Value: answer}
	}

	if p.search == nil {
		return domain.Selection{Value: answer}
	}
	return runCallback(func() error { return p.search.Call(answer) }, domain.Selection{Value: answer})
}
