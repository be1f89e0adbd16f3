package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

// Sender is implemented by *telegram.Bot.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Sink turns reminders and digests into chat messages. Other events are
// ignored; a chat is not a place for every task edit.
type Sink struct {
	l            log.Logger
	sender       Sender
	chatID       int64
	preDueOffset time.Duration
}

var _ notification.Sink = (*Sink)(nil)

// New creates a Telegram sink sending to chatID.
func New(l log.Logger, sender Sender, chatID int64, preDueOffset time.Duration) *Sink {
	return &Sink{l: l, sender: sender, chatID: chatID, preDueOffset: preDueOffset}
}

// Publish implements notification.Sink.
func (s *Sink) Publish(ctx context.Context, event notification.Event) error {
	var text string
	switch data := event.Data.(type) {
	case notification.ReminderPayload:
		text = s.formatReminder(data)
	case notification.DigestPayload:
		text = formatDigest(data)
	default:
		return nil
	}

	if err := s.sender.SendMessage(ctx, s.chatID, text); err != nil {
		return fmt.Errorf("telegram.Sink: send %s: %w", event.Name, err)
	}
	return nil
}

func (s *Sink) formatReminder(p notification.ReminderPayload) string {
	due := time.Time(p.DueDate).Format(response.DateTimeFormat)
	if p.Kind == "pre_due" {
		return fmt.Sprintf("⏰ Reminder: \"%s\" is due in %d minutes (%s)", p.Description, int(s.preDueOffset.Minutes()), due)
	}
	return fmt.Sprintf("🔔 Due now: \"%s\" (%s)", p.Description, due)
}

func formatDigest(p notification.DigestPayload) string {
	day := time.Time(p.Date).Format(response.DateFormat)
	if len(p.Tasks) == 0 {
		return fmt.Sprintf("📅 %s: nothing due today.", day)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s: %d task(s) due today\n", day, len(p.Tasks))
	for _, t := range p.Tasks {
		fmt.Fprintf(&b, "• %s %s", time.Time(t.DueDate).Format("15:04"), t.Description)
		if t.Priority >= 3 {
			b.WriteString(" (high)")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
