package http

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/checklist"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    int    `json:"priority"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
	}
}

type listReq struct {
	Period string `form:"period"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Period: r.Period}
}

// updateReq uses pointers so an omitted field is left unchanged.
type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *int    `json:"priority"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string            `json:"id"`
	Description     string            `json:"description"`
	DueDate         response.DateTime `json:"due_date"`
	Priority        int               `json:"priority"`
	PriorityLabel   string            `json:"priority_label"`
	Completed       bool              `json:"completed"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
	Checklist       *checklistResp    `json:"checklist,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
}

// checklistResp is present when the description contains "- [ ]" items.
type checklistResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Progress  int `json:"progress"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Description:     t.Description,
		DueDate:         response.DateTime(t.DueDate),
		Priority:        int(t.Priority),
		PriorityLabel:   t.Priority.String(),
		Completed:       t.Completed,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       response.DateTime(t.CreatedAt),
	}
	if stats := checklist.Progress(t.Description); stats.Total > 0 {
		resp.Checklist = &checklistResp{
			Total:     stats.Total,
			Completed: stats.Completed,
			Progress:  stats.Progress,
		}
	}
	return resp
}

type listResp struct {
	Period string     `json:"period"`
	Tasks  []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Period: out.Period, Tasks: tasks}
}

type reminderResp struct {
	Kind   string            `json:"kind"`
	FireAt response.DateTime `json:"fire_at"`
}

type remindersResp struct {
	Task      taskResp       `json:"task"`
	Reminders []reminderResp `json:"reminders"`
}

func (h *handler) newRemindersResp(out task.RemindersOutput) remindersResp {
	loc := out.Task.DueDate.Location()
	reminders := make([]reminderResp, len(out.Jobs))
	for i, j := range out.Jobs {
		reminders[i] = reminderResp{Kind: string(j.Kind), FireAt: response.DateTime(j.FireAt.In(loc))}
	}
	return remindersResp{Task: newTaskResp(out.Task), Reminders: reminders}
}
