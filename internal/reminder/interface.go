package reminder

import (
	"context"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// Scheduler keeps at most one pending pre-due and one due reminder per task
// and fires them through a notification sink.
type Scheduler interface {
	// Reconcile replaces the pending reminders of task with the ones its
	// current state calls for. Completed tasks end up with none.
	Reconcile(ctx context.Context, task model.Task) error

	// Cancel drops every pending reminder of taskID. Cancelling a task with
	// nothing pending is a no-op.
	Cancel(ctx context.Context, taskID string)

	// Pending lists the reminders currently installed for taskID, earliest first.
	Pending(taskID string) []Job

	// Stop cancels all pending reminders and waits for in-flight dispatches.
	Stop()
}

// TaskReader is the part of the task store read at fire time.
// A missing task is reported as a zero model.Task and a nil error.
type TaskReader interface {
	GetTask(ctx context.Context, id string) (model.Task, error)
}

// Clock abstracts wall time and one-shot timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable one-shot timer.
type Timer interface {
	Stop() bool
}
