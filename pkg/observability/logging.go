package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/rofiflow/pkg/domain"
)

// LogHooks logs every invocation and outcome.
// Failed invocations are logged at warn level, everything else at info.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInvoke: func(ctx context.Context, e *domain.InvokeEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "invoke",
					"command", e.Command,
					"options", e.Options,
					"duration", e.Duration,
					"error", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "invoke",
				"command", e.Command,
				"options", e.Options,
				"exit_code", e.Answer.ExitCode,
				"duration", e.Duration,
			)
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			logger.InfoContext(ctx, "outcome",
				"component", e.Component,
				"answer", e.Answer,
				"kind", e.Outcome.Kind(),
			)
		},
	}
}
