package notification

import (
	"context"
	"errors"
	"fmt"
)

// Fanout publishes every event to all of its sinks. A failing sink does not
// stop delivery to the others; all failures are returned joined.
type Fanout struct {
	names []string
	sinks []Sink
}

// NewFanout creates an empty Fanout. Add sinks with Add.
func NewFanout() *Fanout {
	return &Fanout{}
}

// Add registers a named sink. Not safe for use concurrently with Publish;
// register every sink during startup.
func (f *Fanout) Add(name string, s Sink) *Fanout {
	if s == nil {
		return f
	}
	f.names = append(f.names, name)
	f.sinks = append(f.sinks, s)
	return f
}

// Len returns the number of registered sinks.
func (f *Fanout) Len() int {
	return len(f.sinks)
}

// Publish implements Sink.
func (f *Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for i, s := range f.sinks {
		if err := s.Publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.names[i], err))
		}
	}
	return errors.Join(errs...)
}
