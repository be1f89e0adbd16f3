package model

import (
	"fmt"
	"time"
)

// Priority orders tasks in the study planner. Higher is more urgent.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityNormal Priority = 2
	PriorityHigh   Priority = 3
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// Task is a study-planner task. ID and CreatedAt never change after creation.
type Task struct {
	ID              string
	Description     string
	DueDate         time.Time // wall clock in the planner timezone
	Priority        Priority
	Completed       bool
	CalendarEventID string // empty when not mirrored to Google Calendar
	CreatedAt       time.Time
}

// Exists reports whether t was actually loaded. Repositories return a zero Task for not-found.
func (t Task) Exists() bool {
	return t.ID != ""
}
