package todo

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxTaskSize is 1KB; a task is one selector row.
	DefaultMaxTaskSize = 1024
	// EnvMaxTaskSize is the environment variable to override the default
	EnvMaxTaskSize = "ROFIFLOW_MAX_TASK_SIZE"
)

var (
	ErrTaskTooLarge = errors.New("task exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("task contains invalid UTF-8 sequences")
)

// SanitizeTask cleans typed task text by enforcing the size limit, validating
// UTF-8 and stripping control characters. Tabs become spaces; newlines would
// split the task over two rows of the option payload, so they go too.
func SanitizeTask(input string) (string, error) {
	limit := maxTaskSize()
	if len(input) > limit {
		// Rejected rather than truncated so the stored task is what the user saw.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrTaskTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return strings.TrimSpace(input), nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case !unicode.IsControl(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func maxTaskSize() int {
	if val := os.Getenv(EnvMaxTaskSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxTaskSize
}
