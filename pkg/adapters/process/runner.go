package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/aretw0/rofiflow/internal/logging"
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/window"
)

// DefaultCommand is the selector spawned when no command is configured.
const DefaultCommand = "rofi"

// waitDelay bounds how long Wait lingers on open pipes after the context is done.
const waitDelay = 2 * time.Second

// DefaultArgs switch rofi into menu mode; they precede the window arguments.
var DefaultArgs = []string{"-dmenu"}

// Runner implements ports.Selector by spawning a fresh selector process per call.
// A Runner holds no per-call state and may be reused, but each Select blocks for
// the whole lifetime of its process.
type Runner struct {
	command  string
	baseArgs []string
	profile  *Profile
	dir      string
	env      []string
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithCommand replaces the selector binary and the arguments placed before the window arguments.
func WithCommand(command string, baseArgs ...string) RunnerOption {
	return func(r *Runner) {
		r.command = command
		r.baseArgs = append([]string(nil), baseArgs...)
	}
}

// WithProfile applies a loaded profile: its command (if set) and its window settings,
// which are layered onto every window passed to Select.
func WithProfile(p Profile) RunnerOption {
	return func(r *Runner) {
		if p.Command != "" {
			r.command = p.Command
			r.baseArgs = append([]string(nil), p.Args...)
		}
		r.profile = &p
	}
}

// WithDir sets the working directory of the selector process.
func WithDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(env ...string) RunnerOption {
	return func(r *Runner) {
		r.env = append(r.env, env...)
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithHooks registers observability hooks fired after every invocation.
func WithHooks(hooks domain.LifecycleHooks) RunnerOption {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// NewRunner creates a Runner spawning "rofi -dmenu" unless configured otherwise.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		command:  DefaultCommand,
		baseArgs: append([]string(nil), DefaultArgs...),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Command returns the selector binary.
func (r *Runner) Command() string {
	return r.command
}

// Available reports whether the selector binary resolves on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.command)
	return err == nil
}

// CommandLine returns the full argument vector (without the binary) for w.
func (r *Runner) CommandLine(w window.Window) []string {
	if r.profile != nil {
		w = r.profile.Apply(w)
	}
	args := make([]string, 0, len(r.baseArgs)+16)
	args = append(args, r.baseArgs...)
	return append(args, w.Args()...)
}

// Select spawns the selector, writes the option payload to its stdin, reads its
// stdout and waits for it to exit. There are no retries.
func (r *Runner) Select(ctx context.Context, w window.Window, options []string) (domain.Answer, error) {
	args := r.CommandLine(w)

	start := time.Now()
	answer, err := r.run(ctx, w.GetFormat(), args, options)
	duration := time.Since(start)

	if err != nil {
		r.logger.Error("selector invocation failed", "command", r.command, "error", err)
	} else {
		r.logger.Debug("selector answered",
			"command", r.command,
			"options", len(options),
			"index", answer.Index,
			"exit_code", answer.ExitCode,
			"duration", duration,
		)
	}

	r.hooks.EmitInvoke(ctx, &domain.InvokeEvent{
		EventBase: domain.EventBase{Timestamp: start, Type: domain.EventInvoke},
		Command:   r.command,
		Args:      args,
		Options:   len(options),
		Answer:    answer,
		Duration:  duration,
		Err:       err,
	})

	return answer, err
}

func (r *Runner) run(ctx context.Context, format window.ReturnFormat, args []string, options []string) (domain.Answer, error) {
	noAnswer := domain.Answer{Index: domain.NoIndex}

	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Dir = r.dir
	// A cancelled selector may leave children holding stdout open.
	cmd.WaitDelay = waitDelay
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}
	cmd.Stdin = strings.NewReader(window.Payload(options))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return noAnswer, &domain.InvocationError{Op: domain.ErrSpawn, Err: err}
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return noAnswer, &domain.InvocationError{Op: domain.ErrAbnormalExit, Err: ctxErr}
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return noAnswer, &domain.InvocationError{Op: domain.ErrCommunicate, Err: err}
		}

		exitCode = exitErr.ExitCode()
		if !acceptedExitCode(exitCode) {
			cause := fmt.Errorf("%w. Stderr: %s", err, strings.TrimSpace(stderr.String()))
			return domain.Answer{Index: domain.NoIndex, ExitCode: exitCode},
				&domain.InvocationError{Op: domain.ErrAbnormalExit, Err: cause}
		}
	}

	text, index := window.ParseReply(format, stdout.String(), options)
	return domain.Answer{Text: text, Index: index, ExitCode: exitCode}, nil
}

// acceptedExitCode reports whether code is part of the selector's normal protocol:
// 0 (accepted), 1 (dismissed) and 10-28 (custom key bindings). A process killed by
// a signal reports -1.
func acceptedExitCode(code int) bool {
	return code == 0 || code == 1 || (code >= 10 && code <= 28)
}
