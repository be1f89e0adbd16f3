package usecase

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return model.Task{}, err
	}
	if !t.Exists() {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update applies a partial update. Reminders are reconciled when the due
// date or the completion flag changed.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	defer uc.locks.lock(input.ID)()

	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Completed:   existing.Completed,
	}
	if input.Description != nil {
		if opt.Description, err = uc.validateDescription(*input.Description); err != nil {
			return model.Task{}, err
		}
	}
	if input.DueDate != nil {
		if opt.DueDate, err = uc.parseDue(*input.DueDate); err != nil {
			return model.Task{}, err
		}
	}
	if input.Priority != nil {
		if *input.Priority == 0 {
			return model.Task{}, task.ErrInvalidPriority
		}
		if opt.Priority, err = uc.validatePriority(*input.Priority); err != nil {
			return model.Task{}, err
		}
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, err
	}
	if !updated.Exists() {
		return model.Task{}, task.ErrTaskNotFound
	}

	dueChanged := !updated.DueDate.Equal(existing.DueDate)
	if dueChanged || updated.Completed != existing.Completed {
		if err := uc.reconcile(ctx, updated); err != nil {
			return model.Task{}, err
		}
	}
	if dueChanged || updated.Description != existing.Description {
		updated = uc.mirrorUpdate(ctx, updated)
	}

	uc.publish(ctx, notification.NewTaskUpdateEvent(notification.ActionUpdated, updated))
	return updated, nil
}

// Delete removes a task and its pending reminders. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	defer uc.locks.lock(id)()

	existing, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}

	uc.scheduler.Cancel(ctx, id)
	uc.mirrorDelete(ctx, existing)
	uc.publish(ctx, notification.NewTaskDeletedEvent(id))
	return nil
}
