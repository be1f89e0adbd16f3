package telegram_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification/telegram"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
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

type fakeSender struct {
	chatID int64
	texts  []string
	err    error
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.chatID = chatID
	f.texts = append(f.texts, text)
	return nil
}

var due = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestSinkReminders(t *testing.T) {
	task := model.Task{ID: "t1", Description: "Submit essay", DueDate: due}

	tests := []struct {
		name string
		kind string
		want string
	}{
		{name: "pre due", kind: "pre_due", want: "⏰ Reminder: \"Submit essay\" is due in 30 minutes (2024-05-01T10:00)"},
		{name: "due", kind: "due", want: "🔔 Due now: \"Submit essay\" (2024-05-01T10:00)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			sink := telegram.New(&mockLogger{}, sender, 777, 30*time.Minute)

			require.NoError(t, sink.Publish(context.Background(), notification.NewReminderEvent(task, tt.kind)))
			require.Len(t, sender.texts, 1)
			assert.Equal(t, int64(777), sender.chatID)
			assert.Equal(t, tt.want, sender.texts[0])
		})
	}
}

func TestSinkDigest(t *testing.T) {
	sender := &fakeSender{}
	sink := telegram.New(&mockLogger{}, sender, 777, 30*time.Minute)

	tasks := []model.Task{
		{ID: "a", Description: "Lab report", DueDate: due, Priority: model.PriorityHigh},
		{ID: "b", Description: "Read chapter 3", DueDate: due.Add(4 * time.Hour), Priority: model.PriorityNormal},
	}
	ev := notification.Event{
		Name: notification.EventDailyDigest,
		Data: notification.DigestPayload{Date: response.Date(due), Tasks: notification.NewTaskPayloads(tasks)},
	}
	require.NoError(t, sink.Publish(context.Background(), ev))

	require.Len(t, sender.texts, 1)
	assert.Equal(t, "📅 2024-05-01: 2 task(s) due today\n• 10:00 Lab report (high)\n• 14:00 Read chapter 3", sender.texts[0])

	empty := notification.Event{
		Name: notification.EventDailyDigest,
		Data: notification.DigestPayload{Date: response.Date(due)},
	}
	require.NoError(t, sink.Publish(context.Background(), empty))
	assert.Equal(t, "📅 2024-05-01: nothing due today.", sender.texts[1])
}

func TestSinkIgnoresOtherEvents(t *testing.T) {
	sender := &fakeSender{err: errors.New("must not be called")}
	sink := telegram.New(&mockLogger{}, sender, 777, 30*time.Minute)

	assert.NoError(t, sink.Publish(context.Background(), notification.NewTaskDeletedEvent("t1")))
	assert.NoError(t, sink.Publish(context.Background(), notification.NewAttendanceDeletedEvent("r1")))
}

func TestSinkSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("chat not found")}
	sink := telegram.New(&mockLogger{}, sender, 777, 30*time.Minute)

	err := sink.Publish(context.Background(), notification.NewReminderEvent(model.Task{ID: "t1", DueDate: due}, "due"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}
