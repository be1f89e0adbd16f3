package usecase

import (
	"context"
	"strings"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
)

// List returns the tasks due inside the named period, earliest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	period := strings.ToLower(strings.TrimSpace(input.Period))
	if period == "" {
		period = datemath.PeriodToday
	}

	window, err := uc.dateMath.Window(period, uc.now())
	if err != nil {
		return task.ListOutput{}, task.ErrInvalidPeriod
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{DueFrom: window.From, DueTo: window.To})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Period: period,
		From:   window.From,
		To:     window.To,
		Tasks:  tasks,
	}, nil
}

// Snapshot returns every task in the store.
func (uc *implUseCase) Snapshot(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Snapshot ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
