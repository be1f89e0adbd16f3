package usecase

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
)

// Create validates and stores a new task, then schedules its reminders.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	description, err := uc.validateDescription(input.Description)
	if err != nil {
		return model.Task{}, err
	}
	due, err := uc.parseDue(input.DueDate)
	if err != nil {
		return model.Task{}, err
	}
	priority, err := uc.validatePriority(input.Priority)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Description: description,
		DueDate:     due,
		Priority:    priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	t = uc.mirrorCreate(ctx, t)
	if err := uc.reconcile(ctx, t); err != nil {
		return model.Task{}, err
	}
	uc.publish(ctx, notification.NewTaskUpdateEvent(notification.ActionAdded, t))

	return t, nil
}
