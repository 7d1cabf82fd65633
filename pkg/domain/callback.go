package domain

// ItemCallback is the host operation run when an item is chosen.
// Implementations must be safe to call repeatedly. Clone must return a callback that
// can be stored alongside a cloned component without sharing mutable state.
type ItemCallback[T any] interface {
	Call(item T) error
	Clone() ItemCallback[T]
}

// ActionCallback is the host operation run when an action label is chosen for an item.
type ActionCallback[T any] interface {
	Call(item T, action string) error
	Clone() ActionCallback[T]
}

// BlankCallback is the host operation run when the blank row of a page is chosen.
type BlankCallback interface {
	Call() error
	Clone() BlankCallback
}

// SearchCallback receives free text that matched neither an item nor an action.
type SearchCallback interface {
	Call(text string) error
	Clone() SearchCallback
}

// ItemFunc adapts a plain function to ItemCallback.
type ItemFunc[T any] func(item T) error

// Call invokes f.
func (f ItemFunc[T]) Call(item T) error { return f(item) }

// Clone returns f. Function values carry no state of their own; stateful hosts
// should implement ItemCallback directly.
func (f ItemFunc[T]) Clone() ItemCallback[T] { return f }

// ActionFunc adapts a plain function to ActionCallback.
type ActionFunc[T any] func(item T, action string) error

// Call invokes f.
func (f ActionFunc[T]) Call(item T, action string) error { return f(item, action) }

// Clone returns f.
func (f ActionFunc[T]) Clone() ActionCallback[T] { return f }

// BlankFunc adapts a plain function to BlankCallback.
type BlankFunc func() error

// Call invokes f.
func (f BlankFunc) Call() error { return f() }

// Clone returns f.
func (f BlankFunc) Clone() BlankCallback { return f }

// SearchFunc adapts a plain function to SearchCallback.
type SearchFunc func(text string) error

// Call invokes f.
func (f SearchFunc) Call(text string) error { return f(text) }

// Clone returns f.
func (f SearchFunc) Clone() SearchCallback { return f }
