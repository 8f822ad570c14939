package server

import (
	"context"
	"sync"
)

type contextKey string

const (
	// contextKeyRequestID is the context key for request ID
	contextKeyRequestID contextKey = "requestID"
	// contextKeyTrace is the context key for the per-request trace
	contextKeyTrace contextKey = "trace"
)

// OutcomeNone is reported for requests whose handler never set an outcome.
const OutcomeNone = "none"

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// requestTrace carries what a handler learned about its upstream back out to
// the logging and metrics middleware.
type requestTrace struct {
	mu      sync.Mutex
	outcome string
}

func (t *requestTrace) setOutcome(outcome string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outcome = outcome
}

func (t *requestTrace) Outcome() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.outcome == "" {
		return OutcomeNone
	}
	return t.outcome
}

func withTrace(ctx context.Context) (context.Context, *requestTrace) {
	if t, ok := ctx.Value(contextKeyTrace).(*requestTrace); ok {
		return ctx, t
	}
	t := &requestTrace{}
	return context.WithValue(ctx, contextKeyTrace, t), t
}

// SetOutcome records how the upstream leg of the current request ended.
// Outcomes become a metrics label, so callers must pass values from a small
// fixed set. Outside the server middleware it does nothing.
func SetOutcome(ctx context.Context, outcome string) {
	if t, ok := ctx.Value(contextKeyTrace).(*requestTrace); ok {
		t.setOutcome(outcome)
	}
}
