package usecase

import (
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	"github.com/gauravmalhotra04/raiden-ai/internal/attendance/repository"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
	pkgLog "github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	sink     notification.Sink
	dateMath *datemath.Parser
	now      func() time.Time
}

var _ attendance.UseCase = (*implUseCase)(nil)

// New creates a new attendance UseCase. now defaults to time.Now.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	sink notification.Sink,
	dateMath *datemath.Parser,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		sink:     sink,
		dateMath: dateMath,
		now:      now,
	}
}
