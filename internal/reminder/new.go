package reminder

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

const (
	shardCount             = 32
	defaultDispatchTimeout = 10 * time.Second
)

// shard owns the jobs of every task id hashing to it. All access to a task's
// jobs goes through its shard lock, so work on one task is serialized while
// tasks on other shards proceed independently.
type shard struct {
	mu   sync.Mutex
	jobs map[jobKey]*job
}

type implScheduler struct {
	l      log.Logger
	store  TaskReader
	sink   notification.Sink
	clock  Clock
	offset time.Duration

	dispatchTimeout time.Duration

	shards   [shardCount]shard
	gen      atomic.Uint64
	stopped  atomic.Bool
	inflight sync.WaitGroup
}

var _ Scheduler = (*implScheduler)(nil)

// New creates a Scheduler with no pending jobs.
func New(l log.Logger, store TaskReader, sink notification.Sink, cfg Config) Scheduler {
	if store == nil {
		panic("reminder: store is required")
	}
	if sink == nil {
		panic("reminder: sink is required")
	}

	s := &implScheduler{
		l:               l,
		store:           store,
		sink:            sink,
		clock:           cfg.Clock,
		offset:          cfg.PreDueOffset,
		dispatchTimeout: cfg.DispatchTimeout,
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.offset <= 0 {
		s.offset = DefaultPreDueOffset
	}
	if s.dispatchTimeout <= 0 {
		s.dispatchTimeout = defaultDispatchTimeout
	}
	for i := range s.shards {
		s.shards[i].jobs = make(map[jobKey]*job)
	}
	return s
}

func (s *implScheduler) shardFor(taskID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(taskID))
	return &s.shards[h.Sum32()%shardCount]
}
