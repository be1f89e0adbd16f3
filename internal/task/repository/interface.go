package repository

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// Repository is the task store. Lookups of a missing id return a zero
// model.Task and no error.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	DeleteTask(ctx context.Context, id string) (bool, error)
}
