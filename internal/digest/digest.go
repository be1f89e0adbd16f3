package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
	"github.com/gauravmalhotra04/raiden-ai/pkg/response"
)

// DefaultSpec fires every day at 07:00:00.
const DefaultSpec = "0 0 7 * * *"

// TaskLister is implemented by task.UseCase.
type TaskLister interface {
	List(ctx context.Context, input task.ListInput) (task.ListOutput, error)
}

type Config struct {
	// Spec is a six-field cron expression (seconds first).
	Spec     string
	Location *time.Location
	// Timeout bounds a single run.
	Timeout time.Duration
}

// Digest publishes a daily_digest event with the incomplete tasks due today.
type Digest struct {
	l       log.Logger
	tasks   TaskLister
	sink    notification.Sink
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a Digest and registers its cron job. Call Start to begin firing.
func New(l log.Logger, tasks TaskLister, sink notification.Sink, cfg Config) (*Digest, error) {
	if cfg.Spec == "" {
		cfg.Spec = DefaultSpec
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	d := &Digest{
		l:       l,
		tasks:   tasks,
		sink:    sink,
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(cfg.Location)),
		timeout: cfg.Timeout,
	}

	if _, err := d.cron.AddFunc(cfg.Spec, d.tick); err != nil {
		return nil, fmt.Errorf("digest: invalid cron spec %q: %w", cfg.Spec, err)
	}
	return d, nil
}

func (d *Digest) Start() {
	d.cron.Start()
}

// Stop halts the schedule and waits for a running job until ctx is done.
func (d *Digest) Stop(ctx context.Context) error {
	select {
	case <-d.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run builds and publishes one digest. It returns the number of tasks listed.
func (d *Digest) Run(ctx context.Context) (int, error) {
	out, err := d.tasks.List(ctx, task.ListInput{Period: datemath.PeriodToday})
	if err != nil {
		return 0, fmt.Errorf("digest: list tasks: %w", err)
	}

	var pending []model.Task
	for _, t := range out.Tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}

	event := notification.Event{
		Name: notification.EventDailyDigest,
		Data: notification.DigestPayload{
			Date:  response.Date(out.From),
			Tasks: notification.NewTaskPayloads(pending),
		},
	}
	if err := d.sink.Publish(ctx, event); err != nil {
		return len(pending), fmt.Errorf("digest: publish: %w", err)
	}
	return len(pending), nil
}

func (d *Digest) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	n, err := d.Run(ctx)
	if err != nil {
		d.l.Warnf(ctx, "digest.tick: %v", err)
		return
	}
	d.l.Infof(ctx, "digest.tick: published %d task(s)", n)
}
