package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyler_Describe(t *testing.T) {
	s := NewStyler(termenv.Ascii)

	assert.Equal(t, "selection: Entry 2", s.Describe(domain.Selection{Value: "Entry 2"}))
	assert.Equal(t, "action: Age Up", s.Describe(domain.Action{Value: "Age Up"}))
	assert.Equal(t, "error: invalid action", s.Describe(domain.Error{Message: "invalid action"}))
	assert.Equal(t, "cancel", s.Describe(domain.Cancel{}))
}

func TestStyler_Colours(t *testing.T) {
	s := NewStyler(termenv.TrueColor)
	assert.Contains(t, s.Describe(domain.Exit{}), "\x1b[")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii, "v1.2.3")
	assert.Contains(t, buf.String(), "version v1.2.3")
}

func TestPlainRenderer(t *testing.T) {
	render, err := NewPlainRenderer(80)
	require.NoError(t, err)

	out, err := render("# Todo\n\n- [x] done\n- [ ] open\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "open")
	assert.NotContains(t, out, "\x1b[")
}
