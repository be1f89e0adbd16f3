package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/reminder"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
)

func (uc *implUseCase) validateDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", task.ErrEmptyDescription
	}
	return description, nil
}

func (uc *implUseCase) parseDue(raw string) (time.Time, error) {
	due, err := uc.dateMath.ParseDue(raw)
	if err != nil {
		return time.Time{}, task.ErrInvalidDueDate
	}
	return due, nil
}

// validatePriority maps 0 to the default priority.
func (uc *implUseCase) validatePriority(raw int) (model.Priority, error) {
	if raw == 0 {
		return model.PriorityNormal, nil
	}
	p := model.Priority(raw)
	if !p.Valid() {
		return 0, task.ErrInvalidPriority
	}
	return p, nil
}

// reconcile is called after every persisted change to due date or completion.
// The stored task stays intact on failure; the next mutation or restart retries.
func (uc *implUseCase) reconcile(ctx context.Context, t model.Task) error {
	err := uc.scheduler.Reconcile(ctx, t)
	if err == nil {
		return nil
	}
	uc.l.Errorf(ctx, "uc.reconcile task=%s: %v", t.ID, err)
	if errors.Is(err, reminder.ErrSchedulerStopped) {
		return task.ErrRemindersUnavailable
	}
	return err
}

func (uc *implUseCase) publish(ctx context.Context, event notification.Event) {
	if err := uc.sink.Publish(ctx, event); err != nil {
		uc.l.Warnf(ctx, "uc.publish %s: %v", event.Name, err)
	}
}
