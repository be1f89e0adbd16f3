package repository

import (
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Description string
	DueDate     time.Time
	Priority    model.Priority
}

// ListTasksOptions filters ListTasks. Zero fields do not filter.
// Results are ordered by due date, earliest first.
type ListTasksOptions struct {
	DueFrom              time.Time // inclusive
	DueTo                time.Time // exclusive
	IncompleteOnly       bool
	WithoutCalendarEvent bool
}

// UpdateTaskOptions replaces the mutable fields of a Task.
type UpdateTaskOptions struct {
	ID          string
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Completed   bool
}
