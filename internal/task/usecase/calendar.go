package usecase

import (
	"context"
	"errors"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/gcalendar"
)

// BackfillCalendar mirrors every incomplete future task without a calendar event.
func (uc *implUseCase) BackfillCalendar(ctx context.Context) (int, error) {
	if uc.calendar.Client == nil {
		return 0, task.ErrCalendarDisabled
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		DueFrom:              uc.now(),
		IncompleteOnly:       true,
		WithoutCalendarEvent: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BackfillCalendar ListTasks: %v", err)
		return 0, err
	}

	mirrored := 0
	for _, t := range tasks {
		if uc.mirrorCreate(ctx, t).CalendarEventID != "" {
			mirrored++
		}
	}
	return mirrored, nil
}

// Calendar mirroring is best-effort: failures are logged and the task is
// returned unchanged.

func (uc *implUseCase) mirrorCreate(ctx context.Context, t model.Task) model.Task {
	if uc.calendar.Client == nil {
		return t
	}

	ev, err := uc.calendar.Client.CreateEvent(ctx, uc.eventRequest(t))
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorCreate task=%s CreateEvent: %v", t.ID, err)
		return t
	}
	if err := uc.repo.SetCalendarEventID(ctx, t.ID, ev.ID); err != nil {
		uc.l.Warnf(ctx, "uc.mirrorCreate task=%s SetCalendarEventID: %v", t.ID, err)
		return t
	}
	t.CalendarEventID = ev.ID
	return t
}

func (uc *implUseCase) mirrorUpdate(ctx context.Context, t model.Task) model.Task {
	if uc.calendar.Client == nil {
		return t
	}
	if t.CalendarEventID == "" {
		return uc.mirrorCreate(ctx, t)
	}

	_, err := uc.calendar.Client.UpdateEvent(ctx, t.CalendarEventID, uc.eventRequest(t))
	if errors.Is(err, gcalendar.ErrEventNotFound) {
		// Removed on the calendar side; put it back.
		t.CalendarEventID = ""
		return uc.mirrorCreate(ctx, t)
	}
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorUpdate task=%s UpdateEvent: %v", t.ID, err)
	}
	return t
}

func (uc *implUseCase) mirrorDelete(ctx context.Context, t model.Task) {
	if uc.calendar.Client == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.Client.DeleteEvent(ctx, uc.calendar.CalendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.mirrorDelete task=%s DeleteEvent: %v", t.ID, err)
	}
}

func (uc *implUseCase) eventRequest(t model.Task) gcalendar.CreateEventRequest {
	return gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     t.Description,
		Description: "Priority: " + t.Priority.String(),
		StartTime:   t.DueDate.Add(-uc.offset),
		EndTime:     t.DueDate,
		Timezone:    uc.calendar.Timezone,
	}
}
