package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauravmalhotra04/raiden-ai/config"
	sqliteCfg "github.com/gauravmalhotra04/raiden-ai/config/sqlite"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
	"github.com/gauravmalhotra04/raiden-ai/internal/task/repository/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRepo(t *testing.T) (repo.Repository, *time.Location) {
	t.Helper()
	ctx := context.Background()
	db, err := sqliteCfg.Connect(ctx, config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "tasks.db")})
	require.NoError(t, err)
	t.Cleanup(func() { sqliteCfg.Disconnect(ctx, db) })

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return sqlite.New(db, &mockLogger{}, loc), loc
}

func TestCreateAndGetTask(t *testing.T) {
	r, loc := newRepo(t)
	ctx := context.Background()
	due := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{Description: "Submit essay", DueDate: due, Priority: model.PriorityHigh})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Submit essay", got.Description)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.True(t, due.Equal(got.DueDate))
	assert.Equal(t, "2024-05-01 15:30", got.DueDate.Format("2006-01-02 15:04"), "wall clock survives a round trip")
	assert.Equal(t, loc, got.DueDate.Location())
}

func TestCreateTaskConvertsToPlannerTimezone(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		Description: "UTC input",
		DueDate:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Priority:    model.PriorityNormal,
	})
	require.NoError(t, err)

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 15:30", got.DueDate.Format("2006-01-02 15:04"))
}

func TestGetTaskMissing(t *testing.T) {
	r, _ := newRepo(t)

	got, err := r.GetTask(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, got.Exists())
}

func TestUpdateTask(t *testing.T) {
	r, loc := newRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{Description: "Draft", DueDate: time.Date(2024, 5, 1, 9, 0, 0, 0, loc), Priority: model.PriorityLow})
	require.NoError(t, err)

	newDue := time.Date(2024, 5, 2, 18, 0, 0, 0, loc)
	updated, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          created.ID,
		Description: "Final",
		DueDate:     newDue,
		Priority:    model.PriorityHigh,
		Completed:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Description)
	assert.True(t, newDue.Equal(updated.DueDate))
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.True(t, updated.Completed)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "created_at is immutable")

	missing, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "missing", Description: "x", DueDate: newDue, Priority: model.PriorityLow})
	require.NoError(t, err)
	assert.False(t, missing.Exists())
}

func TestDeleteTask(t *testing.T) {
	r, loc := newRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{Description: "Temp", DueDate: time.Date(2024, 5, 1, 9, 0, 0, 0, loc), Priority: model.PriorityNormal})
	require.NoError(t, err)

	deleted, err := r.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := r.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Exists())
}

func TestListTasks(t *testing.T) {
	r, loc := newRepo(t)
	ctx := context.Background()
	day := func(d, h int) time.Time { return time.Date(2024, 5, d, h, 0, 0, 0, loc) }

	mk := func(desc string, due time.Time) model.Task {
		task, err := r.CreateTask(ctx, repo.CreateTaskOptions{Description: desc, DueDate: due, Priority: model.PriorityNormal})
		require.NoError(t, err)
		return task
	}
	late := mk("late", day(3, 18))
	early := mk("early", day(1, 8))
	mid := mk("mid", day(2, 12))
	done := mk("done", day(2, 9))

	_, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: done.ID, Description: done.Description, DueDate: done.DueDate, Priority: done.Priority, Completed: true})
	require.NoError(t, err)
	require.NoError(t, r.SetCalendarEventID(ctx, mid.ID, "evt-1"))

	ids := func(tasks []model.Task) []string {
		out := []string{}
		for _, t := range tasks {
			out = append(out, t.ID)
		}
		return out
	}

	tests := []struct {
		name string
		opt  repo.ListTasksOptions
		want []string
	}{
		{name: "all ordered by due date", opt: repo.ListTasksOptions{}, want: []string{early.ID, done.ID, mid.ID, late.ID}},
		{name: "window is half open", opt: repo.ListTasksOptions{DueFrom: day(2, 0), DueTo: day(3, 18)}, want: []string{done.ID, mid.ID}},
		{name: "incomplete only", opt: repo.ListTasksOptions{IncompleteOnly: true}, want: []string{early.ID, mid.ID, late.ID}},
		{name: "without calendar event", opt: repo.ListTasksOptions{IncompleteOnly: true, WithoutCalendarEvent: true}, want: []string{early.ID, late.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListTasks(ctx, tt.opt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	got, err := r.GetTask(ctx, mid.ID)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", got.CalendarEventID)
}
