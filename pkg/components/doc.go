/*
Package components provides the list-style building blocks of a rofiflow application.

Every component builds an option set, performs exactly one selector invocation per
Display call, and classifies the answer into a domain.Outcome:

  - ItemList: items sharing one callback, closed by a "[cancel]" row.
  - ActionList: action labels applied to one fixed item, closed by a "[cancel]" row.
  - Page: items, a blank row, action labels and an automatic "[exit]" row, with
    optional blank and fallback (search) callbacks. Meant as a main menu.
  - EntryBox: a zero-row window capturing free text.

Classification precedence is fixed: terminating sentinels first (the empty answer
always wins), then the blank row, then items, then actions, then free text.
Invocation and callback failures become domain.Error; components never panic on them.
*/
package components
