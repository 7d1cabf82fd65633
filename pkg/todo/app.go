package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/rofiflow/internal/logging"
	"github.com/aretw0/rofiflow/pkg/components"
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/aretw0/rofiflow/pkg/window"
)

// Action labels shown on the root page.
const (
	ActionAdd    = "[add]"
	ActionDelete = "[delete]"
)

// Prompts and message used by the app windows.
const (
	RootPrompt   = "Today's Todo list"
	AddPrompt    = "Enter a new TODO"
	DeletePrompt = "Select the Todo to delete"
	RootMessage  = "Select an item to mark it as complete, select the blank row to add a new item"
)

// ErrInput is returned by Step when the selector could not be invoked.
var ErrInput = errors.New("todo: selector failed")

// State is a page of the app.
type State int

const (
	StateRoot State = iota
	StateAdd
	StateDelete
	StateExit
)

func (s State) String() string {
	switch s {
	case StateRoot:
		return "root"
	case StateAdd:
		return "add"
	case StateDelete:
		return "delete"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// App is the to-do application: one component per step, persisted through a Store.
type App struct {
	selector ports.Selector
	store    Store
	window   window.Window
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger passed to the app and its components.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithHooks sets the hooks passed to every component.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(a *App) {
		a.hooks = hooks
	}
}

// WithWindow replaces the base window shared by all pages.
func WithWindow(w window.Window) Option {
	return func(a *App) {
		a.window = w
	}
}

// NewApp creates the app.
func NewApp(sel ports.Selector, store Store, opts ...Option) *App {
	a := &App{
		selector: sel,
		store:    store,
		window:   DefaultWindow(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultWindow is a 720x640 centred window rendering Pango markup.
func DefaultWindow() window.Window {
	return window.New(RootPrompt).
		Format(window.FormatText).
		Location(window.MiddleCentre).
		Message(RootMessage).
		Dimensions(window.Dimensions{Width: 720, Height: 640, Lines: 0, Columns: 1}).
		AddArgs("-markup-rows")
}

// Run steps from the root page until the user exits or a step fails.
func (a *App) Run(ctx context.Context) error {
	state := StateRoot
	for state != StateExit {
		next, err := a.Step(ctx, state)
		if err != nil {
			return err
		}
		a.logger.Debug("todo transition", "from", state, "to", next)
		state = next
	}
	return nil
}

// Step displays the page for state and returns the page to show next.
func (a *App) Step(ctx context.Context, state State) (State, error) {
	if err := ctx.Err(); err != nil {
		return StateExit, err
	}

	switch state {
	case StateRoot:
		return a.root(ctx)
	case StateAdd:
		return a.add(ctx)
	case StateDelete:
		return a.remove(ctx)
	case StateExit:
		return StateExit, nil
	default:
		return StateExit, fmt.Errorf("todo: unknown state %v", state)
	}
}

func (a *App) root(ctx context.Context) (State, error) {
	items, err := a.store.List(ctx)
	if err != nil {
		return StateExit, err
	}

	toggle := domain.ItemFunc[Item](func(item Item) error {
		return a.store.Replace(ctx, item, item.Toggled())
	})
	addTyped := domain.SearchFunc(func(text string) error {
		return a.addTask(ctx, text)
	})

	page := components.NewPage(a.selector, items, toggle).
		Window(a.window).
		Actions(ActionAdd, ActionDelete).
		Search(addTyped).
		Hooks(a.hooks).
		Logger(a.logger)

	switch out := page.Display(ctx, RootPrompt).(type) {
	case domain.Blank:
		return StateAdd, nil
	case domain.Action:
		if out.Value == ActionDelete {
			return StateDelete, nil
		}
		return StateAdd, nil
	case domain.Exit:
		return StateExit, nil
	case domain.Error:
		return a.handleError(out)
	default:
		return StateRoot, nil
	}
}

func (a *App) add(ctx context.Context) (State, error) {
	box := components.NewEntryBox(a.selector).
		Window(a.window.Message("")).
		Hooks(a.hooks).
		Logger(a.logger)

	switch out := box.Display(ctx, AddPrompt).(type) {
	case domain.Selection:
		if err := a.addTask(ctx, out.Value); err != nil {
			return a.handleError(domain.Error{Message: err.Error()})
		}
		return StateRoot, nil
	case domain.Error:
		return a.handleError(out)
	default:
		return StateRoot, nil
	}
}

func (a *App) remove(ctx context.Context) (State, error) {
	items, err := a.store.List(ctx)
	if err != nil {
		return StateExit, err
	}

	del := domain.ItemFunc[Item](func(item Item) error {
		return a.store.Remove(ctx, item)
	})
	list := components.NewItemList(a.selector, items, del).
		Window(a.window.Message("")).
		Hooks(a.hooks).
		Logger(a.logger)

	if out, ok := list.Display(ctx, DeletePrompt).(domain.Error); ok {
		return a.handleError(out)
	}
	return StateRoot, nil
}

func (a *App) addTask(ctx context.Context, text string) error {
	task, err := SanitizeTask(text)
	if err != nil || task == "" {
		return err
	}
	return a.store.Add(ctx, New(task))
}

// handleError stops the app when the selector itself failed. Callback failures are
// logged and the root page is shown again.
func (a *App) handleError(out domain.Error) (State, error) {
	if out.Message == components.InputErrorMessage {
		return StateExit, ErrInput
	}
	a.logger.Warn("todo operation failed", "error", out.Message)
	return StateRoot, nil
}
