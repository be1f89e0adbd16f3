package usecase

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository"
)

// Reminders returns the task with its pending reminder jobs.
func (uc *implUseCase) Reminders(ctx context.Context, id string) (task.RemindersOutput, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return task.RemindersOutput{}, err
	}
	return task.RemindersOutput{Task: t, Jobs: uc.scheduler.Pending(id)}, nil
}

// RestoreReminders reinstalls reminders for every incomplete task that is
// not yet due. Timers live in memory, so this runs once after a restart.
func (uc *implUseCase) RestoreReminders(ctx context.Context) (int, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		DueFrom:        uc.now(),
		IncompleteOnly: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RestoreReminders ListTasks: %v", err)
		return 0, err
	}

	restored := 0
	for _, t := range tasks {
		if err := uc.scheduler.Reconcile(ctx, t); err != nil {
			uc.l.Errorf(ctx, "uc.RestoreReminders Reconcile task=%s: %v", t.ID, err)
			continue
		}
		restored++
	}
	uc.l.Infof(ctx, "uc.RestoreReminders: restored reminders for %d of %d tasks", restored, len(tasks))
	return restored, nil
}
