package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventInvoke  EventType = "invoke"
	EventOutcome EventType = "outcome"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// InvokeEvent describes one finished selector invocation.
type InvokeEvent struct {
	EventBase
	Command  string        `json:"command"`
	Args     []string      `json:"args"`
	Options  int           `json:"options"`
	Answer   Answer        `json:"answer"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// OutcomeEvent describes the classification result of one display call.
type OutcomeEvent struct {
	EventBase
	Component string  `json:"component"`
	Answer    string  `json:"answer"`
	Outcome   Outcome `json:"-"`
}

// LifecycleHooks defines callbacks for observability. Nil fields are skipped.
type LifecycleHooks struct {
	OnInvoke  func(context.Context, *InvokeEvent)
	OnOutcome func(context.Context, *OutcomeEvent)
}

// EmitInvoke calls OnInvoke if set.
func (h LifecycleHooks) EmitInvoke(ctx context.Context, e *InvokeEvent) {
	if h.OnInvoke != nil {
		h.OnInvoke(ctx, e)
	}
}

// EmitOutcome calls OnOutcome if set.
func (h LifecycleHooks) EmitOutcome(ctx context.Context, e *OutcomeEvent) {
	if h.OnOutcome != nil {
		h.OnOutcome(ctx, e)
	}
}

// ChainHooks combines hook sets; each event is delivered to every set in order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnInvoke: func(ctx context.Context, e *InvokeEvent) {
			for _, h := range hooks {
				h.EmitInvoke(ctx, e)
			}
		},
		OnOutcome: func(ctx context.Context, e *OutcomeEvent) {
			for _, h := range hooks {
				h.EmitOutcome(ctx, e)
			}
		},
	}
}
