package task

import (
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/reminder"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Description string
	DueDate     string // wall clock, e.g. "2024-05-01T15:30"
	Priority    int    // 0 means default
}

type ListInput struct {
	Period string // today | week | month | all
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Description *string
	DueDate     *string
	Priority    *int
	Completed   *bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Period string
	From   time.Time
	To     time.Time
	Tasks  []model.Task
}

type RemindersOutput struct {
	Task model.Task
	Jobs []reminder.Job
}

// CalendarConfig enables the Google Calendar mirror.
type CalendarConfig struct {
	Client     Calendar
	CalendarID string
	Timezone   string
}
