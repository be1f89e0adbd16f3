package usecase

import (
	"hash/fnv"
	"sync"
)

const lockShards = 32

// taskLocks serializes mutations of the same task id so the stored task and
// its installed reminders always come from the same write.
type taskLocks struct {
	shards [lockShards]sync.Mutex
}

// lock acquires the shard for id and returns its unlock func.
func (tl *taskLocks) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &tl.shards[h.Sum32()%lockShards]
	mu.Lock()
	return mu.Unlock
}
