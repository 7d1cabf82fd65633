package tui

import (
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/muesli/termenv"
)

// Styler colours outcome descriptions for a terminal profile.
type Styler struct {
	profile termenv.Profile
}

// NewStyler creates a Styler. termenv.Ascii disables colours.
func NewStyler(p termenv.Profile) Styler {
	return Styler{profile: p}
}

// Describe renders an outcome as "kind: value".
func (s Styler) Describe(o domain.Outcome) string {
	label := string(o.Kind())
	color := "#a78bfa"
	switch o.(type) {
	case domain.Error:
		color = "#fb7185"
	case domain.Cancel, domain.Exit:
		color = "#94a3b8"
	case domain.Selection, domain.Action, domain.Success:
		color = "#34d399"
	}

	styled := s.profile.String(label).Foreground(s.profile.Color(color)).Bold()
	value := domain.Value(o)
	if value == "" {
		return styled.String()
	}
	return styled.String() + ": " + value
}
