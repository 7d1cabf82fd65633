package domain

// Reserved option strings. Hosts must not use them as item display forms.
const (
	// EmptyAnswer is what the selector returns when dismissed without a choice.
	EmptyAnswer = ""

	// BlankEntry is the single-space blank row.
	BlankEntry = " "

	// CancelEntry terminates item and action lists.
	CancelEntry = "[cancel]"

	// ExitEntry terminates pages. Pages may override it.
	ExitEntry = "[exit]"
)

// NoIndex marks an Answer that does not refer to a listed option.
const NoIndex = -1

// Answer is the raw reply read back from one selector invocation.
type Answer struct {
	// Text is the chosen option, or the free text typed by the user.
	// It is empty when the selector was dismissed or returned an unusable index.
	Text string

	// Index is the position of Text in the option set, or NoIndex.
	Index int

	// ExitCode is the selector's exit status (rofi: 0 accept, 1 dismissed, 10-28 custom keys).
	ExitCode int
}
