/*
Package rofiflow builds small menu-driven applications on top of an external
selector process, rofi in dmenu mode by default.

# Concept

Each display call sends one option set to the selector, reads back one answer and
classifies it into a typed domain.Outcome: Selection, Action, Blank, Cancel, Exit,
Success or Error. The host application decides what to show next by switching on
the outcome. There is no event loop or retained UI state; every call is a single,
blocking round-trip.

# Packages

  - pkg/domain: outcomes, the Item constraint, callbacks, sentinels and errors.
  - pkg/window: the per-invocation window configuration and reply parsing.
  - pkg/components: ItemList, ActionList, Page and EntryBox.
  - pkg/ports: the Selector port and its contract tests.
  - pkg/adapters/process: the rofi process adapter and selector profiles.
  - pkg/adapters/memory: a scripted selector for tests and dry runs.
  - pkg/observability: Prometheus metrics and log hooks.
  - pkg/todo: a sample to-do application with memory, file and redis stores.

# Usage

	sel := process.NewRunner()
	list := components.NewItemList(sel, domain.Texts("Entry 1", "Entry 2", "Entry 3"), nil)

	switch out := list.Display(ctx, "pick one").(type) {
	case domain.Selection:
		fmt.Println("picked", out.Value)
	case domain.Cancel:
		fmt.Println("cancelled")
	case domain.Error:
		log.Fatal(out.Message)
	}

Callbacks run synchronously inside Display. A callback error turns the outcome into
domain.Error carrying its message, so hosts never have to recover from panics.
*/
package rofiflow
