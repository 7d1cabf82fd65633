package window

import (
	"strconv"
	"strings"
)

// NoIndex is returned by ParseReply when the reply does not refer to a listed option.
const NoIndex = -1

// ParseReply interprets the raw stdout of a selector for the given format.
//
// In index mode the trimmed reply must be an in-range integer; anything else
// (empty, non-numeric, -1, out of range) yields ("", NoIndex). In text mode the
// trimmed reply is returned verbatim, with the index of its first exact match.
// A text reply that equals an option before trimming (the single-space blank row)
// is returned untrimmed so it stays distinguishable from a dismissal.
func ParseReply(format ReturnFormat, raw string, options []string) (string, int) {
	if format == FormatText {
		line := strings.TrimRight(raw, "\r\n")
		if i := indexOf(options, line); i != NoIndex {
			return line, i
		}
		reply := strings.TrimSpace(raw)
		return reply, indexOf(options, reply)
	}

	reply := strings.TrimSpace(raw)

	i, err := strconv.Atoi(reply)
	if err != nil || i < 0 || i >= len(options) {
		return "", NoIndex
	}
	return options[i], i
}

func indexOf(options []string, s string) int {
	for i, o := range options {
		if o == s {
			return i
		}
	}
	return NoIndex
}
