package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReply(t *testing.T) {
	options := []string{"Entry 1", "Entry 2", "", "[cancel]"}

	t.Run("Index Mode", func(t *testing.T) {
		text, idx := ParseReply(FormatIndex, "1\n", options)
		assert.Equal(t, "Entry 2", text)
		assert.Equal(t, 1, idx)

		text, idx = ParseReply(FormatIndex, "3", options)
		assert.Equal(t, "[cancel]", text)
		assert.Equal(t, 3, idx)
	})

	t.Run("Index Mode Degrades To No Answer", func(t *testing.T) {
		for _, raw := range []string{"", "-1", "4", "abc", " 2x"} {
			text, idx := ParseReply(FormatIndex, raw, options)
			assert.Equal(t, "", text, raw)
			assert.Equal(t, NoIndex, idx, raw)
		}
	})

	t.Run("Text Mode", func(t *testing.T) {
		text, idx := ParseReply(FormatText, "  Entry 1 \n", options)
		assert.Equal(t, "Entry 1", text)
		assert.Equal(t, 0, idx)

		text, idx = ParseReply(FormatText, " \n", []string{"a", " ", "[exit]"})
		assert.Equal(t, " ", text)
		assert.Equal(t, 1, idx)

		text, idx = ParseReply(FormatText, "free text\n", options)
		assert.Equal(t, "free text", text)
		assert.Equal(t, NoIndex, idx)
	})
}
