package components_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/rofiflow/pkg/adapters/memory"
	"github.com/aretw0/rofiflow/pkg/components"
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// person is a host item with mutable state, used to check callbacks get clones.
type person struct {
	Name string
	Age  int
}

func (p *person) String() string { return p.Name }

func (p *person) Clone() *person {
	c := *p
	return &c
}

var entries = domain.Texts("Entry 1", "Entry 2", "Entry 3")

func spawnFailure() *memory.Selector {
	return memory.Failing(&domain.InvocationError{Op: domain.ErrSpawn, Err: errors.New("executable file not found")})
}

func TestItemList(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		var got []domain.Text
		cb := domain.ItemFunc[domain.Text](func(item domain.Text) error {
			got = append(got, item)
			return nil
		})
		list := components.NewItemList(memory.Picks("Entry 2"), entries, cb)

		out := list.Display(ctx, "pick")
		assert.Equal(t, domain.Selection{Value: "Entry 2"}, out)
		assert.Equal(t, []domain.Text{"Entry 2"}, got)
	})

	t.Run("Options End With Cancel", func(t *testing.T) {
		sel := memory.Picks("[cancel]")
		list := components.NewItemList(sel, entries, nil)

		assert.Equal(t, domain.Cancel{}, list.Display(ctx, "pick"))

		call, ok := sel.LastCall()
		require.True(t, ok)
		assert.Equal(t, []string{"Entry 1", "Entry 2", "Entry 3", "", "[cancel]"}, call.Options)
		assert.Equal(t, 5, call.Window.GetDimensions().Lines)
		assert.Equal(t, "pick", call.Window.GetPrompt())
		assert.Equal(t, window.FormatText, call.Window.GetFormat())
		assert.Contains(t, call.Window.ExtraArgs(), "-markup-rows")
	})

	t.Run("Index Mode", func(t *testing.T) {
		sel := memory.Picks("Entry 3", "[cancel]")
		list := components.NewItemList(sel, entries, nil).Window(window.New("ignored"))

		assert.Equal(t, domain.Selection{Value: "Entry 3"}, list.Display(ctx, "pick"))
		assert.Equal(t, domain.Cancel{}, list.Display(ctx, "pick"))
	})

	t.Run("Dismissal Cancels", func(t *testing.T) {
		list := components.NewItemList(memory.NewSelector(memory.Reply{Raw: "", ExitCode: 1}), entries, nil)
		assert.Equal(t, domain.Cancel{}, list.Display(ctx, "pick"))
	})

	t.Run("Callback Failure", func(t *testing.T) {
		cb := domain.ItemFunc[domain.Text](func(domain.Text) error { return domain.Failf("cannot use %s", "it") })
		list := components.NewItemList(memory.Picks("Entry 1"), entries, cb)
		assert.Equal(t, domain.Error{Message: "cannot use it"}, list.Display(ctx, "pick"))
	})

	t.Run("Unmatched Text Skips Callback", func(t *testing.T) {
		called := false
		cb := domain.ItemFunc[domain.Text](func(domain.Text) error { called = true; return nil })
		list := components.NewItemList(memory.NewSelector(memory.Reply{Raw: "Entry 22\n"}), entries, cb)

		assert.Equal(t, domain.Selection{Value: "Entry 22"}, list.Display(ctx, "pick"))
		assert.False(t, called)
	})

	t.Run("Sentinels Beat Items", func(t *testing.T) {
		list := components.NewItemList(nil, domain.Texts("[cancel]", "a"), nil)
		assert.Equal(t, domain.Cancel{}, list.Classify("[cancel]"))
		assert.Equal(t, domain.Cancel{}, list.Classify(""))
		assert.Equal(t, domain.Blank{}, list.Classify(" "))
	})

	t.Run("Spawn Failure", func(t *testing.T) {
		list := components.NewItemList(spawnFailure(), entries, nil)
		assert.Equal(t, domain.Error{Message: components.InputErrorMessage}, list.Display(ctx, "pick"))
	})

	t.Run("Callback Receives A Clone", func(t *testing.T) {
		people := []*person{{Name: "Ann", Age: 30}}
		cb := domain.ItemFunc[*person](func(p *person) error {
			p.Age = 99
			return nil
		})
		list := components.NewItemList(memory.Picks("Ann"), people, cb)

		assert.Equal(t, domain.Selection{Value: "Ann"}, list.Display(ctx, "pick"))
		assert.Equal(t, 30, people[0].Age)
	})

	t.Run("Clone Is Independent", func(t *testing.T) {
		people := []*person{{Name: "Ann", Age: 30}}
		list := components.NewItemList(nil, people, nil)
		clone := list.Clone()

		people[0].Name = "Bob"
		assert.Equal(t, []string{"Bob", "", "[cancel]"}, list.Options())
		assert.Equal(t, []string{"Ann", "", "[cancel]"}, clone.Options())
	})
}

func TestActionList(t *testing.T) {
	ctx := context.Background()
	actions := []string{"Age Up", "Age Down"}

	newList := func(sel *memory.Selector, p *person) *components.ActionList[*person] {
		cb := domain.ActionFunc[*person](func(p *person, action string) error {
			switch action {
			case "Age Up":
				p.Age++
			case "Age Down":
				p.Age--
			default:
				return domain.Failf("invalid action")
			}
			return nil
		})
		return components.NewActionList(sel, p, actions, cb)
	}

	t.Run("Listed Action", func(t *testing.T) {
		p := &person{Name: "Ann", Age: 30}
		list := newList(memory.Picks("Age Up"), p)

		assert.Equal(t, domain.Action{Value: "Age Up"}, list.Display(ctx, "action"))
		assert.Equal(t, 31, p.Age, "action callbacks operate on the item itself")
	})

	t.Run("Unknown Action", func(t *testing.T) {
		list := newList(memory.NewSelector(memory.Reply{Raw: "bogus\n"}), &person{Name: "Ann"})
		assert.Equal(t, domain.Error{Message: "invalid action"}, list.Display(ctx, "action"))
	})

	t.Run("Options End With Cancel", func(t *testing.T) {
		sel := memory.Picks("[cancel]")
		list := newList(sel, &person{Name: "Ann"})

		assert.Equal(t, domain.Cancel{}, list.Display(ctx, "action"))
		call, _ := sel.LastCall()
		assert.Equal(t, []string{"Age Up", "Age Down", "", "[cancel]"}, call.Options)
	})

	t.Run("Nil Callback Accepts Everything", func(t *testing.T) {
		list := components.NewActionList[domain.Text](nil, "x", actions, nil)
		assert.Equal(t, domain.Action{Value: "custom"}, list.Classify("custom"))
		assert.True(t, list.Has("Age Down"))
		assert.False(t, list.Has("custom"))
	})

	t.Run("Spawn Failure", func(t *testing.T) {
		list := newList(spawnFailure(), &person{Name: "Ann"})
		assert.Equal(t, domain.Error{Message: components.InputErrorMessage}, list.Display(ctx, "action"))
	})

	t.Run("Clone Copies The Item", func(t *testing.T) {
		p := &person{Name: "Ann", Age: 30}
		clone := newList(nil, p).Clone()
		assert.Equal(t, domain.Action{Value: "Age Up"}, clone.Classify("Age Up"))
		assert.Equal(t, 30, p.Age)
	})
}

func TestPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Answer Exits", func(t *testing.T) {
		page := components.NewPage(memory.NewSelector(memory.Reply{Raw: ""}), domain.Texts("item"), nil).
			Actions("[do]")
		assert.Equal(t, domain.Exit{}, page.Display(ctx, "menu"))
	})

	t.Run("Option Layout", func(t *testing.T) {
		sel := memory.Picks("[exit]")
		page := components.NewPage(sel, domain.Texts("a", "b"), nil).Actions("[x]", "[y]").Message("hello")

		assert.Equal(t, domain.Exit{}, page.Display(ctx, "menu"))
		call, _ := sel.LastCall()
		assert.Equal(t, []string{"a", "b", " ", "[x]", "[y]", "[exit]"}, call.Options)
		assert.Equal(t, 6, call.Window.GetDimensions().Lines)
		assert.Equal(t, "hello", call.Window.GetMessage())
	})

	t.Run("Custom Exit Entry", func(t *testing.T) {
		page := components.NewPage[domain.Text](nil, nil, nil).ExitEntry("[quit]")
		options := page.Options()
		assert.Equal(t, "[quit]", options[len(options)-1])
		assert.Equal(t, domain.Exit{}, page.Classify("[quit]"))
		assert.Equal(t, domain.Selection{Value: "[exit]"}, page.Classify("[exit]"))
	})

	t.Run("Blank Row", func(t *testing.T) {
		calls := 0
		page := components.NewPage[domain.Text](memory.Picks(" ", " "), nil, nil).
			Blank(domain.BlankFunc(func() error {
				calls++
				if calls > 1 {
					return errors.New("no more")
				}
				return nil
			}))

		assert.Equal(t, domain.Blank{}, page.Display(ctx, "menu"))
		assert.Equal(t, domain.Error{Message: "no more"}, page.Display(ctx, "menu"))
	})

	t.Run("Items Actions And Search", func(t *testing.T) {
		var toggled []domain.Text
		var searched []string
		page := components.NewPage(nil, entries, domain.ItemFunc[domain.Text](func(item domain.Text) error {
			toggled = append(toggled, item)
			return nil
		})).
			Actions("[add]").
			Search(domain.SearchFunc(func(text string) error {
				searched = append(searched, text)
				if text == "bad" {
					return errors.New("search failed")
				}
				return nil
			}))

		assert.Equal(t, domain.Selection{Value: "Entry 1"}, page.Classify("Entry 1"))
		assert.Equal(t, domain.Action{Value: "[add]"}, page.Classify("[add]"))
		assert.Equal(t, domain.Selection{Value: "Entry"}, page.Classify("Entry"))
		assert.Equal(t, domain.Error{Message: "search failed"}, page.Classify("bad"))

		assert.Equal(t, []domain.Text{"Entry 1"}, toggled)
		assert.Equal(t, []string{"Entry", "bad"}, searched)
	})

	t.Run("Item Callback Failure", func(t *testing.T) {
		page := components.NewPage(nil, entries, domain.ItemFunc[domain.Text](func(domain.Text) error {
			return errors.New("nope")
		}))
		assert.Equal(t, domain.Error{Message: "nope"}, page.Classify("Entry 3"))
	})

	t.Run("Search Page Window", func(t *testing.T) {
		sel := memory.Picks("zzz")
		page := components.NewSearchPage(sel, entries, nil, nil)

		assert.Equal(t, domain.Selection{Value: "zzz"}, page.Display(ctx, "search"))
		call, _ := sel.LastCall()
		assert.Equal(t, window.Dimensions{Width: 640, Height: 480, Lines: 5, Columns: 4}, call.Window.GetDimensions())
	})

	t.Run("Spawn Failure", func(t *testing.T) {
		page := components.NewPage(spawnFailure(), entries, nil)
		assert.Equal(t, domain.Error{Message: components.InputErrorMessage}, page.Display(ctx, "menu"))
	})
}

func TestEntryBox(t *testing.T) {
	ctx := context.Background()

	t.Run("Capture Trims", func(t *testing.T) {
		sel := memory.NewSelector(memory.Reply{Raw: "  hello world \n"})
		text, err := components.NewEntryBox(sel).Capture(ctx, "Say")
		require.NoError(t, err)
		assert.Equal(t, "hello world", text)

		call, _ := sel.LastCall()
		assert.Equal(t, 0, call.Window.GetDimensions().Lines)
		assert.Equal(t, window.FormatText, call.Window.GetFormat())
		assert.Equal(t, "Say", call.Window.GetPrompt())
	})

	t.Run("Forced Settings Survive Window", func(t *testing.T) {
		sel := memory.NewSelector(memory.Reply{Raw: "x"})
		box := components.NewEntryBox(sel).Window(window.New("other").Lines(9))
		assert.Equal(t, domain.Selection{Value: "x"}, box.Display(ctx, "Say"))

		call, _ := sel.LastCall()
		assert.Equal(t, 0, call.Window.GetDimensions().Lines)
		assert.Equal(t, window.FormatText, call.Window.GetFormat())
	})

	t.Run("Empty Cancels", func(t *testing.T) {
		box := components.NewEntryBox(memory.NewSelector(memory.Reply{Raw: "   \n"}))
		assert.Equal(t, domain.Cancel{}, box.Display(ctx, "Say"))
	})

	t.Run("Failure", func(t *testing.T) {
		_, err := components.NewEntryBox(spawnFailure()).Capture(ctx, "Say")
		assert.ErrorIs(t, err, domain.ErrSpawn)

		out := components.NewEntryBox(spawnFailure()).Display(ctx, "Say")
		assert.Equal(t, domain.Error{Message: components.InputErrorMessage}, out)
	})
}

func TestHooksAndLogging(t *testing.T) {
	var events []*domain.OutcomeEvent
	hooks := domain.LifecycleHooks{
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			events = append(events, e)
		},
	}

	list := components.NewItemList(memory.Picks("Entry 1"), entries, nil).Hooks(hooks)
	list.Display(context.Background(), "pick")

	require.Len(t, events, 1)
	assert.Equal(t, "ItemList", events[0].Component)
	assert.Equal(t, "Entry 1", events[0].Answer)
	assert.Equal(t, domain.KindSelection, events[0].Outcome.Kind())
	assert.Equal(t, domain.EventOutcome, events[0].Type)
}

func TestSentinelIsLastAndWins(t *testing.T) {
	// Items that collide with sentinels must never hide the terminating row.
	hostile := domain.Texts("[cancel]", "[exit]", " ", "")

	list := components.NewItemList(nil, hostile, nil)
	opts := list.Options()
	assert.Equal(t, domain.CancelEntry, opts[len(opts)-1])
	assert.Equal(t, domain.Cancel{}, list.Classify(opts[len(opts)-1]))

	actions := components.NewActionList[domain.Text](nil, "x", []string{"[cancel]"}, nil)
	opts = actions.Options()
	assert.Equal(t, domain.CancelEntry, opts[len(opts)-1])
	assert.Equal(t, domain.Cancel{}, actions.Classify(opts[len(opts)-1]))

	page := components.NewPage(nil, hostile, nil).Actions("[exit]")
	opts = page.Options()
	assert.Equal(t, domain.ExitEntry, opts[len(opts)-1])
	assert.Equal(t, domain.Exit{}, page.Classify(opts[len(opts)-1]))
}
