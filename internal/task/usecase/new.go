package usecase

import (
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/reminder"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	"github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
	pkgLog "github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

// Config holds the optional knobs of the task UseCase.
type Config struct {
	PreDueOffset time.Duration
	Calendar     task.CalendarConfig
	Now          func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	scheduler reminder.Scheduler
	sink      notification.Sink
	dateMath  *datemath.Parser
	calendar  task.CalendarConfig
	offset    time.Duration
	now       func() time.Time
	locks     taskLocks
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	scheduler reminder.Scheduler,
	sink notification.Sink,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		scheduler: scheduler,
		sink:      sink,
		dateMath:  dateMath,
		calendar:  cfg.Calendar,
		offset:    cfg.PreDueOffset,
		now:       cfg.Now,
	}
	if uc.offset <= 0 {
		uc.offset = reminder.DefaultPreDueOffset
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
