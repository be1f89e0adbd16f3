package digest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauravmalhotra04/raiden-ai/internal/digest"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
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

type fakeLister struct {
	out      task.ListOutput
	err      error
	lastList task.ListInput
}

func (f *fakeLister) List(ctx context.Context, in task.ListInput) (task.ListOutput, error) {
	f.lastList = in
	return f.out, f.err
}

var today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestRunPublishesIncompleteTasks(t *testing.T) {
	lister := &fakeLister{out: task.ListOutput{
		Period: "today",
		From:   today,
		To:     today.AddDate(0, 0, 1),
		Tasks: []model.Task{
			{ID: "a", Description: "Essay", DueDate: today.Add(10 * time.Hour)},
			{ID: "b", Description: "Done already", DueDate: today.Add(11 * time.Hour), Completed: true},
		},
	}}
	var got []notification.Event
	sink := notification.SinkFunc(func(ctx context.Context, e notification.Event) error {
		got = append(got, e)
		return nil
	})

	d, err := digest.New(&mockLogger{}, lister, sink, digest.Config{})
	require.NoError(t, err)

	n, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "today", lister.lastList.Period)

	require.Len(t, got, 1)
	assert.Equal(t, notification.EventDailyDigest, got[0].Name)
	payload, ok := got[0].Data.(notification.DigestPayload)
	require.True(t, ok)
	require.Len(t, payload.Tasks, 1)
	assert.Equal(t, "a", payload.Tasks[0].ID)
	assert.True(t, time.Time(payload.Date).Equal(today))
}

func TestRunWithNothingDue(t *testing.T) {
	var payload notification.DigestPayload
	sink := notification.SinkFunc(func(ctx context.Context, e notification.Event) error {
		payload = e.Data.(notification.DigestPayload)
		return nil
	})

	d, err := digest.New(&mockLogger{}, &fakeLister{out: task.ListOutput{From: today}}, sink, digest.Config{})
	require.NoError(t, err)

	n, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NotNil(t, payload.Tasks)
	assert.Empty(t, payload.Tasks)
}

func TestRunErrors(t *testing.T) {
	noop := notification.SinkFunc(func(ctx context.Context, e notification.Event) error { return nil })
	d, err := digest.New(&mockLogger{}, &fakeLister{err: errors.New("database is locked")}, noop, digest.Config{})
	require.NoError(t, err)
	_, err = d.Run(context.Background())
	assert.Error(t, err)

	failing := notification.SinkFunc(func(ctx context.Context, e notification.Event) error { return errors.New("offline") })
	d, err = digest.New(&mockLogger{}, &fakeLister{out: task.ListOutput{From: today}}, failing, digest.Config{})
	require.NoError(t, err)
	_, err = d.Run(context.Background())
	assert.Error(t, err)
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	noop := notification.SinkFunc(func(ctx context.Context, e notification.Event) error { return nil })

	_, err := digest.New(&mockLogger{}, &fakeLister{}, noop, digest.Config{Spec: "every morning"})
	assert.Error(t, err)

	// five fields are rejected once seconds are enabled
	_, err = digest.New(&mockLogger{}, &fakeLister{}, noop, digest.Config{Spec: "0 7 * * *"})
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	noop := notification.SinkFunc(func(ctx context.Context, e notification.Event) error { return nil })
	d, err := digest.New(&mockLogger{}, &fakeLister{}, noop, digest.Config{Location: time.UTC})
	require.NoError(t, err)

	d.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.Stop(ctx))
}
