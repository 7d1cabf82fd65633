package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/rofiflow/internal/presentation/tui"
	"github.com/aretw0/rofiflow/pkg/components"
	"github.com/aretw0/rofiflow/pkg/domain"
)

// Exit codes of the selection commands.
const (
	ExitOK        = 0
	ExitCancelled = 1
	ExitError     = 2
)

// Pick shows items in an ItemList.
func Pick(ctx context.Context, env *Env, prompt string, items []string) domain.Outcome {
	return components.NewItemList(env.Selector, domain.Texts(items...), nil).
		Hooks(env.Hooks).
		Logger(env.Logger).
		Display(ctx, prompt)
}

// Actions shows labels for item in an ActionList. Free text is accepted as a custom action.
func Actions(ctx context.Context, env *Env, prompt, item string, labels []string) domain.Outcome {
	return components.NewActionList(env.Selector, domain.Text(item), labels, nil).
		Hooks(env.Hooks).
		Logger(env.Logger).
		Display(ctx, prompt)
}

// Entry captures free text.
func Entry(ctx context.Context, env *Env, prompt string) domain.Outcome {
	return components.NewEntryBox(env.Selector).
		Hooks(env.Hooks).
		Logger(env.Logger).
		Display(ctx, prompt)
}

// ReadLines reads non-empty lines, e.g. items piped on stdin.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// ExitCode maps an outcome to the process exit status.
func ExitCode(o domain.Outcome) int {
	switch o.(type) {
	case domain.Error:
		return ExitError
	case domain.Cancel, domain.Exit:
		return ExitCancelled
	default:
		return ExitOK
	}
}

// WriteOutcome prints the answer to stdout and, for terminating outcomes or when
// verbose, a styled description to stderr. It returns the exit code.
func WriteOutcome(stdout, stderr io.Writer, styler tui.Styler, o domain.Outcome, verbose bool) int {
	if !domain.IsTerminal(o) {
		if value := domain.Value(o); value != "" {
			fmt.Fprintln(stdout, value)
		}
	}
	if verbose || domain.IsTerminal(o) {
		fmt.Fprintln(stderr, styler.Describe(o))
	}
	return ExitCode(o)
}
