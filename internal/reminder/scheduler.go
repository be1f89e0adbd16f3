package reminder

import (
	"context"
	"sort"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// Reconcile cancels the task's pending jobs and installs the ones still in the future.
// Validation happens before anything is touched, so a rejected task keeps its jobs.
func (s *implScheduler) Reconcile(ctx context.Context, task model.Task) error {
	if task.ID == "" {
		return ErrTaskNotFound
	}
	if !task.Completed && task.DueDate.IsZero() {
		return ErrInvalidDueDate
	}
	if s.stopped.Load() {
		return ErrSchedulerStopped
	}

	now := s.clock.Now()
	candidates := s.candidates(task, now)

	sh := s.shardFor(task.ID)
	sh.mu.Lock()
	// Stop may have run while we waited for the lock.
	if s.stopped.Load() {
		sh.mu.Unlock()
		return ErrSchedulerStopped
	}
	cancelled := s.cancelLocked(sh, task.ID)
	for _, c := range candidates {
		s.installLocked(sh, c, c.FireAt.Sub(now))
	}
	sh.mu.Unlock()

	s.l.Debugf(ctx, "reminder.Reconcile: task=%s cancelled=%d installed=%d", task.ID, cancelled, len(candidates))
	return nil
}

// candidates returns the jobs task calls for, skipping moments not strictly after now.
func (s *implScheduler) candidates(task model.Task, now time.Time) []Job {
	if task.Completed {
		return nil
	}

	var out []Job
	for _, c := range []Job{
		{TaskID: task.ID, Kind: KindPreDue, FireAt: task.DueDate.Add(-s.offset)},
		{TaskID: task.ID, Kind: KindDue, FireAt: task.DueDate},
	} {
		if c.FireAt.After(now) {
			out = append(out, c)
		}
	}
	return out
}

// installLocked must be called with sh.mu held.
func (s *implScheduler) installLocked(sh *shard, j Job, delay time.Duration) {
	key := jobKey{taskID: j.TaskID, kind: j.Kind}
	gen := s.gen.Add(1)
	entry := &job{Job: j, gen: gen}
	entry.timer = s.clock.AfterFunc(delay, func() { s.fire(key, gen) })
	sh.jobs[key] = entry
}

// cancelLocked must be called with sh.mu held. It returns how many jobs were removed.
func (s *implScheduler) cancelLocked(sh *shard, taskID string) int {
	n := 0
	for _, kind := range []Kind{KindPreDue, KindDue} {
		key := jobKey{taskID: taskID, kind: kind}
		if entry, ok := sh.jobs[key]; ok {
			entry.timer.Stop()
			delete(sh.jobs, key)
			n++
		}
	}
	return n
}

// Cancel implements Scheduler.
func (s *implScheduler) Cancel(ctx context.Context, taskID string) {
	if taskID == "" {
		return
	}

	sh := s.shardFor(taskID)
	sh.mu.Lock()
	n := s.cancelLocked(sh, taskID)
	sh.mu.Unlock()

	if n > 0 {
		s.l.Debugf(ctx, "reminder.Cancel: task=%s cancelled=%d", taskID, n)
	}
}

// Pending implements Scheduler.
func (s *implScheduler) Pending(taskID string) []Job {
	sh := s.shardFor(taskID)
	sh.mu.Lock()
	var out []Job
	for _, kind := range []Kind{KindPreDue, KindDue} {
		if entry, ok := sh.jobs[jobKey{taskID: taskID, kind: kind}]; ok {
			out = append(out, entry.Job)
		}
	}
	sh.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

// Stop implements Scheduler. Reconcile fails with ErrSchedulerStopped afterwards.
func (s *implScheduler) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}

	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for key, entry := range sh.jobs {
			entry.timer.Stop()
			delete(sh.jobs, key)
		}
		sh.mu.Unlock()
	}

	s.inflight.Wait()
}
