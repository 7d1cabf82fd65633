package domain

// Item is the capability set required from list entries.
//
// String returns the display form. Two items are the same option iff their display
// forms are byte-equal; identity and structural equality are never consulted.
// Clone returns an independent copy that can be handed to a callback without
// touching the displayed original.
type Item[T any] interface {
	String() string
	Clone() T
}

// Text is the stock string item.
type Text string

// String returns the text itself.
func (t Text) String() string { return string(t) }

// Clone returns t; strings are immutable.
func (t Text) Clone() Text { return t }

// Texts converts plain strings into Text items.
func Texts(values ...string) []Text {
	items := make([]Text, len(values))
	for i, v := range values {
		items[i] = Text(v)
	}
	return items
}

// DisplayForms renders items in order.
func DisplayForms[T Item[T]](items []T) []string {
	forms := make([]string, len(items))
	for i, item := range items {
		forms[i] = item.String()
	}
	return forms
}

// CloneItems duplicates every item of the slice.
func CloneItems[T Item[T]](items []T) []T {
	if items == nil {
		return nil
	}
	cloned := make([]T, len(items))
	for i, item := range items {
		cloned[i] = item.Clone()
	}
	return cloned
}
