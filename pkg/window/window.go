package window

import (
	"strconv"
	"strings"
)

// ReturnFormat selects what the selector prints back.
type ReturnFormat string

const (
	// FormatText returns the chosen or typed text.
	FormatText ReturnFormat = "s"
	// FormatIndex returns the zero-based index of the chosen row.
	FormatIndex ReturnFormat = "i"
)

// Dimensions of the window. Zero width or height lets the selector size itself.
type Dimensions struct {
	Width   int
	Height  int
	Lines   int
	Columns int
}

// Padding is the pixel offset from the anchor location.
type Padding struct {
	X int
	Y int
}

// Window is a request configuration for one selector invocation.
// The zero value is not useful; start from New.
type Window struct {
	prompt     string
	message    string
	location   Location
	padding    Padding
	dimensions Dimensions
	fullscreen bool
	format     ReturnFormat
	extra      []string
}

// New creates a centred, auto-sized, four-line window returning indexes.
func New(prompt string) Window {
	return Window{
		prompt:     prompt,
		location:   MiddleCentre,
		dimensions: Dimensions{Lines: 4, Columns: 1},
		format:     FormatIndex,
	}
}

// Prompt sets the text shown next to the entry field.
func (w Window) Prompt(prompt string) Window {
	w.prompt = prompt
	return w
}

// Message sets the short message shown beneath the prompt. Empty removes it.
func (w Window) Message(message string) Window {
	w.message = message
	return w
}

// Location anchors the window.
func (w Window) Location(l Location) Window {
	w.location = l
	return w
}

// Padding offsets the window from its anchor.
func (w Window) Padding(x, y int) Window {
	w.padding = Padding{X: x, Y: y}
	return w
}

// Dimensions replaces width, height, lines and columns.
func (w Window) Dimensions(d Dimensions) Window {
	w.dimensions = d
	return w
}

// Lines sets the number of visible rows.
func (w Window) Lines(n int) Window {
	w.dimensions.Lines = n
	return w
}

// Columns sets the number of columns.
func (w Window) Columns(n int) Window {
	w.dimensions.Columns = n
	return w
}

// Fullscreen toggles fullscreen mode, which overrides location and padding.
func (w Window) Fullscreen(on bool) Window {
	w.fullscreen = on
	return w
}

// Format selects the return format.
func (w Window) Format(f ReturnFormat) Window {
	w.format = f
	return w
}

// AddArgs appends passthrough arguments. They are emitted last, so they can
// override anything the window sets. Arguments must include their dashes.
func (w Window) AddArgs(args ...string) Window {
	extra := make([]string, 0, len(w.extra)+len(args))
	extra = append(extra, w.extra...)
	w.extra = append(extra, args...)
	return w
}

// GetPrompt returns the prompt.
func (w Window) GetPrompt() string { return w.prompt }

// GetMessage returns the message, or "" when unset.
func (w Window) GetMessage() string { return w.message }

// GetLocation returns the anchor.
func (w Window) GetLocation() Location { return w.location }

// GetPadding returns the offset from the anchor.
func (w Window) GetPadding() Padding { return w.padding }

// GetDimensions returns the size descriptor.
func (w Window) GetDimensions() Dimensions { return w.dimensions }

// IsFullscreen reports whether fullscreen mode is on.
func (w Window) IsFullscreen() bool { return w.fullscreen }

// GetFormat returns the return format.
func (w Window) GetFormat() ReturnFormat { return w.format }

// ExtraArgs returns a copy of the passthrough arguments.
func (w Window) ExtraArgs() []string {
	return append([]string(nil), w.extra...)
}

// Args builds the argument vector in protocol order: return format, size, lines,
// columns, fullscreen or offset+location, message, prompt, passthrough arguments.
func (w Window) Args() []string {
	format := w.format
	if format == "" {
		format = FormatIndex
	}
	args := []string{"-format", string(format)}

	d := w.dimensions
	if d.Width > 0 {
		args = append(args, "-width", strconv.Itoa(d.Width))
	}
	if d.Height > 0 {
		args = append(args, "-height", strconv.Itoa(d.Height))
	}
	args = append(args,
		"-lines", strconv.Itoa(d.Lines),
		"-columns", strconv.Itoa(d.Columns),
	)

	if w.fullscreen {
		args = append(args, "-fullscreen")
	} else {
		args = append(args,
			"-xoffset", strconv.Itoa(w.padding.X),
			"-yoffset", strconv.Itoa(w.padding.Y),
			"-location", strconv.Itoa(int(w.location)),
		)
	}

	if w.message != "" {
		args = append(args, "-mesg", w.message)
	}
	args = append(args, "-p", w.prompt)
	return append(args, w.extra...)
}

// Payload strips newlines from every option and joins them with newlines.
func Payload(options []string) string {
	cleaned := make([]string, len(options))
	for i, o := range options {
		cleaned[i] = strings.ReplaceAll(o, "\n", "")
	}
	return strings.Join(cleaned, "\n")
}
