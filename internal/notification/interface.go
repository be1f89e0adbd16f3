package notification

import "context"

// Sink delivers events to whoever is listening. Delivery is best-effort:
// callers log a returned error and move on, nothing is retried.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, event Event) error

// Publish calls f(ctx, event).
func (f SinkFunc) Publish(ctx context.Context, event Event) error {
	return f(ctx, event)
}
