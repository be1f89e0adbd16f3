package reminder

import "errors"

var (
	ErrTaskNotFound     = errors.New("reminder: task not found")
	ErrInvalidDueDate   = errors.New("reminder: invalid due date")
	ErrSchedulerStopped = errors.New("reminder: scheduler stopped")
)
