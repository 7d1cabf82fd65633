package components

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/rofiflow/internal/logging"
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/aretw0/rofiflow/pkg/window"
)

// InputErrorMessage is the Error message produced when the selector invocation fails.
const InputErrorMessage = "error getting user input"

// base holds what every component needs to perform one invocation.
type base struct {
	name     string
	selector ports.Selector
	window   window.Window
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

func newBase(name string, sel ports.Selector) base {
	return base{
		name:     name,
		selector: sel,
		window:   defaultWindow(name),
		logger:   logging.NewNop(),
	}
}

// defaultWindow is a centred text-mode window with Pango markup enabled.
func defaultWindow(name string) window.Window {
	return window.New(name).
		Format(window.FormatText).
		Location(window.MiddleCentre).
		AddArgs("-markup-rows")
}

// show performs the invocation. lines < 0 keeps the window's own line count.
func (b *base) show(ctx context.Context, prompt string, options []string, lines int) (domain.Answer, error) {
	w := b.window.Prompt(prompt)
	if lines >= 0 {
		w = w.Lines(lines)
	}
	return b.invoke(ctx, w, options)
}

func (b *base) invoke(ctx context.Context, w window.Window, options []string) (domain.Answer, error) {
	answer, err := b.selector.Select(ctx, w, options)
	if err != nil {
		b.logger.Error("selector invocation failed", "component", b.name, "error", err)
	}
	return answer, err
}

// finish reports the outcome to hooks and logs before returning it.
func (b *base) finish(ctx context.Context, answer string, out domain.Outcome) domain.Outcome {
	b.logger.Debug("answer classified",
		"component", b.name,
		"answer", answer,
		"outcome", out.Kind(),
	)
	b.hooks.EmitOutcome(ctx, &domain.OutcomeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventOutcome},
		Component: b.name,
		Answer:    answer,
		Outcome:   out,
	})
	return out
}

// runCallback maps a callback result onto success or Error.
func runCallback(call func() error, success domain.Outcome) domain.Outcome {
	if err := call(); err != nil {
		return domain.Error{Message: err.Error()}
	}
	return success
}

// matchItem returns the index of the first item whose display form equals answer.
func matchItem[T domain.Item[T]](items []T, answer string) int {
	for i, item := range items {
		if item.String() == answer {
			return i
		}
	}
	return -1
}

func matchLabel(labels []string, answer string) int {
	for i, label := range labels {
		if label == answer {
			return i
		}
	}
	return -1
}
