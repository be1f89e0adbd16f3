package reminder

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
)

// fire runs on the timer goroutine. It claims the job only if key still maps
// to the installation identified by gen; a job that was cancelled or replaced
// after its timer went off is ignored.
func (s *implScheduler) fire(key jobKey, gen uint64) {
	sh := s.shardFor(key.taskID)
	sh.mu.Lock()
	entry, ok := sh.jobs[key]
	if !ok || entry.gen != gen {
		sh.mu.Unlock()
		return
	}
	delete(sh.jobs, key)
	s.inflight.Add(1)
	sh.mu.Unlock()

	defer s.inflight.Done()
	s.dispatch(entry.Job)
}

// dispatch re-reads the task and publishes the reminder unless the task is
// gone or completed. Every failure is logged and dropped.
func (s *implScheduler) dispatch(j Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.dispatchTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "reminder.dispatch: task=%s kind=%s panic: %v", j.TaskID, j.Kind, r)
		}
	}()

	task, err := s.store.GetTask(ctx, j.TaskID)
	if err != nil {
		s.l.Errorf(ctx, "reminder.dispatch: task=%s kind=%s GetTask: %v", j.TaskID, j.Kind, err)
		return
	}
	if !task.Exists() {
		s.l.Infof(ctx, "reminder.dispatch: task=%s kind=%s suppressed, task deleted", j.TaskID, j.Kind)
		return
	}
	if task.Completed {
		s.l.Infof(ctx, "reminder.dispatch: task=%s kind=%s suppressed, task completed", j.TaskID, j.Kind)
		return
	}

	if err := s.sink.Publish(ctx, notification.NewReminderEvent(task, string(j.Kind))); err != nil {
		s.l.Warnf(ctx, "reminder.dispatch: task=%s kind=%s dropped: %v", j.TaskID, j.Kind, err)
		return
	}
	s.l.Infof(ctx, "reminder.dispatch: task=%s kind=%s sent", j.TaskID, j.Kind)
}
