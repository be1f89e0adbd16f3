package notification

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

// Event names as seen by push listeners.
const (
	EventTaskReminder     = "task_reminder"
	EventTaskUpdate       = "task_update"
	EventInitialTasks     = "initial_tasks"
	EventAttendanceUpdate = "attendance_update"
	EventDailyDigest      = "daily_digest"
)

// Actions carried by *_update events.
const (
	ActionAdded   = "added"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is the envelope pushed to every sink.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// ReminderPayload is the stable wire shape of a reminder.
type ReminderPayload struct {
	TaskID      string            `json:"task_id"`
	Description string            `json:"description"`
	DueDate     response.DateTime `json:"due_date"`
	Kind        string            `json:"kind"`
}

// TaskPayload is the task representation used in push events.
type TaskPayload struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	DueDate     response.DateTime `json:"due_date"`
	Priority    int               `json:"priority"`
	Completed   bool              `json:"completed"`
	CreatedAt   response.DateTime `json:"created_at"`
}

// TaskUpdatePayload is the data of a task_update event. Task is nil for deletions.
type TaskUpdatePayload struct {
	Action string       `json:"action"`
	Task   *TaskPayload `json:"task,omitempty"`
	TaskID string       `json:"task_id,omitempty"`
}

// TaskListPayload carries a list of tasks (initial_tasks).
type TaskListPayload struct {
	Tasks []TaskPayload `json:"tasks"`
}

// DigestPayload is the data of a daily_digest event.
type DigestPayload struct {
	Date  response.Date `json:"date"`
	Tasks []TaskPayload `json:"tasks"`
}

// AttendancePayload is the attendance representation used in push events.
type AttendancePayload struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// AttendanceUpdatePayload is the data of an attendance_update event. Record is nil for deletions.
type AttendanceUpdatePayload struct {
	Action   string             `json:"action"`
	Record   *AttendancePayload `json:"record,omitempty"`
	RecordID string             `json:"record_id,omitempty"`
}

// NewTaskPayload converts a task to its push representation.
func NewTaskPayload(t model.Task) TaskPayload {
	return TaskPayload{
		ID:          t.ID,
		Description: t.Description,
		DueDate:     response.DateTime(t.DueDate),
		Priority:    int(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

// NewTaskPayloads converts a list of tasks. The result is never nil.
func NewTaskPayloads(tasks []model.Task) []TaskPayload {
	out := make([]TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskPayload(t))
	}
	return out
}

// NewReminderEvent builds the task_reminder event for a task.
func NewReminderEvent(t model.Task, kind string) Event {
	return Event{
		Name: EventTaskReminder,
		Data: ReminderPayload{
			TaskID:      t.ID,
			Description: t.Description,
			DueDate:     response.DateTime(t.DueDate),
			Kind:        kind,
		},
	}
}

// NewTaskUpdateEvent builds a task_update event for an added or updated task.
func NewTaskUpdateEvent(action string, t model.Task) Event {
	p := NewTaskPayload(t)
	return Event{
		Name: EventTaskUpdate,
		Data: TaskUpdatePayload{Action: action, Task: &p},
	}
}

// NewTaskDeletedEvent builds the task_update event for a deleted task.
func NewTaskDeletedEvent(taskID string) Event {
	return Event{
		Name: EventTaskUpdate,
		Data: TaskUpdatePayload{Action: ActionDeleted, TaskID: taskID},
	}
}

// NewAttendanceUpdateEvent builds an attendance_update event for an added or updated record.
func NewAttendanceUpdateEvent(action string, r model.AttendanceRecord) Event {
	return Event{
		Name: EventAttendanceUpdate,
		Data: AttendanceUpdatePayload{
			Action: action,
			Record: &AttendancePayload{
				ID:     r.ID,
				Date:   r.Date,
				Status: string(r.Status),
				Notes:  r.Notes,
			},
		},
	}
}

// NewAttendanceDeletedEvent builds the attendance_update event for a deleted record.
func NewAttendanceDeletedEvent(recordID string) Event {
	return Event{
		Name: EventAttendanceUpdate,
		Data: AttendanceUpdatePayload{Action: ActionDeleted, RecordID: recordID},
	}
}
