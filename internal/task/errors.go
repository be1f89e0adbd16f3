package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidDueDate   = errors.New("invalid due date")
	ErrInvalidPriority  = errors.New("priority must be 1 (low), 2 (normal) or 3 (high)")
	ErrInvalidPeriod    = errors.New("period must be one of today, week, month, all")
	ErrCalendarDisabled = errors.New("google calendar is not configured")

	ErrRemindersUnavailable = errors.New("reminders are unavailable, try again later")
)
