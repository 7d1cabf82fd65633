package domain

// Kind names the variant of an Outcome.
// It is meant for logs and metric labels; hosts should branch with a type switch.
type Kind string

const (
	KindSelection Kind = "selection"
	KindAction    Kind = "action"
	KindBlank     Kind = "blank"
	KindCancel    Kind = "cancel"
	KindExit      Kind = "exit"
	KindSuccess   Kind = "success"
	KindError     Kind = "error"
)

// Outcome is the result of a display operation.
// The set of implementations is closed: Selection, Action, Blank, Cancel, Exit, Success and Error.
//
//	switch o := out.(type) {
//	case domain.Selection:
//		fmt.Println("picked", o.Value)
//	case domain.Exit, domain.Cancel:
//		return
//	case domain.Error:
//		log.Println(o.Message)
//	}
type Outcome interface {
	Kind() Kind
	outcome()
}

// Selection carries the raw text of a chosen (or typed) item.
type Selection struct {
	Value string
}

// Action carries the raw text of a chosen (or typed) action label.
type Action struct {
	Value string
}

// Blank reports that the blank row was chosen.
type Blank struct{}

// Cancel reports that a list was dismissed or its cancel row chosen.
type Cancel struct{}

// Exit reports that a page was dismissed or its exit row chosen.
type Exit struct{}

// Success reports a completed operation with no payload.
type Success struct{}

// Error carries a human-readable failure from the selector or a host callback.
type Error struct {
	Message string
}

func (Selection) Kind() Kind { return KindSelection }
func (Action) Kind() Kind    { return KindAction }
func (Blank) Kind() Kind     { return KindBlank }
func (Cancel) Kind() Kind    { return KindCancel }
func (Exit) Kind() Kind      { return KindExit }
func (Success) Kind() Kind   { return KindSuccess }
func (Error) Kind() Kind     { return KindError }

func (Selection) outcome() {}
func (Action) outcome()    {}
func (Blank) outcome()     {}
func (Cancel) outcome()    {}
func (Exit) outcome()      {}
func (Success) outcome()   {}
func (Error) outcome()     {}

// Value returns the text payload of Selection and Action outcomes,
// the message of an Error, and "" for every other variant.
func Value(o Outcome) string {
	switch v := o.(type) {
	case Selection:
		return v.Value
	case Action:
		return v.Value
	case Error:
		return v.Message
	default:
		return ""
	}
}

// IsTerminal reports whether the outcome asks the host to leave the current page.
func IsTerminal(o Outcome) bool {
	switch o.(type) {
	case Exit, Cancel, Error:
		return true
	default:
		return false
	}
}
