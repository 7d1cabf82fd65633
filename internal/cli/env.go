package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/rofiflow/internal/logging"
	"github.com/aretw0/rofiflow/pkg/adapters/process"
	"github.com/aretw0/rofiflow/pkg/domain"
	"github.com/aretw0/rofiflow/pkg/observability"
	"github.com/aretw0/rofiflow/pkg/ports"
	"github.com/google/shlex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options contains the global flags shared by every command.
type Options struct {
	ProfilePath string
	Command     string // full command line, e.g. "wofi --dmenu"
	Debug       bool
	MetricsAddr string
}

// Env is what commands run against: a selector plus the ambient stack.
type Env struct {
	Logger   *slog.Logger
	Selector ports.Selector
	Hooks    domain.LifecycleHooks
	Metrics  *observability.Metrics

	metricsAddr string
	closers     []func() error
}

// NewEnv builds the logger, the process selector and, when requested, a metrics endpoint.
func NewEnv(opts Options) (*Env, error) {
	env := &Env{Logger: createLogger(opts.Debug)}

	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, observability.LogHooks(env.Logger))
	}

	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return nil, err
		}
		if err := env.serveMetrics(opts.MetricsAddr, reg); err != nil {
			return nil, err
		}
		env.Metrics = metrics
		hooks = append(hooks, metrics.Hooks())
	}
	env.Hooks = domain.ChainHooks(hooks...)

	runnerOpts, err := createRunnerOptions(opts)
	if err != nil {
		return nil, err
	}
	runnerOpts = append(runnerOpts,
		process.WithLogger(env.Logger),
		process.WithHooks(env.Hooks),
	)
	env.Selector = process.NewRunner(runnerOpts...)

	return env, nil
}

// MetricsAddr returns the address the metrics endpoint listens on, or "".
func (e *Env) MetricsAddr() string {
	return e.metricsAddr
}

// Close releases everything NewEnv started.
func (e *Env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	e.closers = nil
	return errors.Join(errs...)
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the answers on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// createRunnerOptions layers the --command flag over the profile.
func createRunnerOptions(opts Options) ([]process.RunnerOption, error) {
	profile, err := process.LoadProfile(opts.ProfilePath)
	if err != nil {
		return nil, err
	}
	runnerOpts := []process.RunnerOption{process.WithProfile(profile)}

	if opts.Command != "" {
		parts, err := shlex.Split(opts.Command)
		if err != nil {
			return nil, fmt.Errorf("invalid --command: %w", err)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("invalid --command: empty")
		}
		base := parts[1:]
		if len(base) == 0 && parts[0] == process.DefaultCommand {
			base = process.DefaultArgs
		}
		runnerOpts = append(runnerOpts, process.WithCommand(parts[0], base...))
	}
	return runnerOpts, nil
}

func (e *Env) serveMetrics(addr string, reg *prometheus.Registry) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen for metrics: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error("metrics server stopped", "error", err)
		}
	}()
	e.metricsAddr = ln.Addr().String()
	e.Logger.Info("serving metrics", "addr", e.metricsAddr)

	e.closers = append(e.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return nil
}
