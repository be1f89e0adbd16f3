package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	sqliteCfg "github.com/gauravmalhotra04/raiden-ai/config/sqlite"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
)

const taskColumns = `id, description, due_date, priority, completed, calendar_event_id, created_at`

// CreateTask inserts a new Task row with a fresh id.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, description, due_date, priority, completed, calendar_event_id, created_at)
		VALUES (?, ?, ?, ?, FALSE, '', ?)`

	t := model.Task{
		ID:          uuid.NewString(),
		Description: opt.Description,
		DueDate:     r.wallClock(opt.DueDate),
		Priority:    opt.Priority,
		CreatedAt:   r.wallClock(r.now()),
	}

	_, err := r.db.ExecContext(ctx, query, t.ID, t.Description, r.format(t.DueDate), int(t.Priority), r.format(t.CreatedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask returns a zero Task (ID == "") when not found.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns)

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the tasks matching opt ordered by due date.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s ORDER BY due_date ASC, created_at ASC`, taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask replaces the mutable fields. Returns a zero Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET description = ?, due_date = ?, priority = ?, completed = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Description, r.format(opt.DueDate), int(opt.Priority), opt.Completed, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetTask(ctx, opt.ID)
}

// SetCalendarEventID records the mirrored calendar event of a task.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id, eventID string) error {
	const query = `UPDATE tasks SET calendar_event_id = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask removes a Task by id and reports whether a row was deleted.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

// buildListQuery builds the WHERE clause + args for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if !opt.DueFrom.IsZero() {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, r.format(opt.DueFrom))
	}
	if !opt.DueTo.IsZero() {
		conditions = append(conditions, "due_date < ?")
		args = append(args, r.format(opt.DueTo))
	}
	if opt.IncompleteOnly {
		conditions = append(conditions, "completed = FALSE")
	}
	if opt.WithoutCalendarEvent {
		conditions = append(conditions, "calendar_event_id = ''")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		due       string
		createdAt string
		priority  int
	)
	if err := row.Scan(&t.ID, &t.Description, &due, &priority, &t.Completed, &t.CalendarEventID, &createdAt); err != nil {
		return model.Task{}, err
	}

	var err error
	if t.DueDate, err = r.parse(due); err != nil {
		return model.Task{}, fmt.Errorf("due_date: %w", err)
	}
	if t.CreatedAt, err = r.parse(createdAt); err != nil {
		return model.Task{}, fmt.Errorf("created_at: %w", err)
	}
	t.Priority = model.Priority(priority)
	return t, nil
}

// wallClock drops sub-second precision, which the storage format cannot keep.
func (r *implRepository) wallClock(t time.Time) time.Time {
	return t.In(r.loc).Truncate(time.Second)
}

func (r *implRepository) format(t time.Time) string {
	return t.In(r.loc).Format(sqliteCfg.TimeLayout)
}

func (r *implRepository) parse(s string) (time.Time, error) {
	return time.ParseInLocation(sqliteCfg.TimeLayout, s, r.loc)
}
