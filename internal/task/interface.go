package task

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD. Every mutation reconciles reminders and broadcasts task_update.
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error

	// Reminders returns the reminders currently pending for a task.
	Reminders(ctx context.Context, id string) (RemindersOutput, error)

	// Snapshot returns every task, used for the initial_tasks push.
	Snapshot(ctx context.Context) ([]model.Task, error)

	// RestoreReminders reconciles every incomplete future task. Run once at boot.
	RestoreReminders(ctx context.Context) (int, error)

	// BackfillCalendar mirrors incomplete tasks that have no calendar event yet.
	BackfillCalendar(ctx context.Context) (int, error)
}

// Calendar is the mirror target for task deadlines. *gcalendar.Client implements it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
