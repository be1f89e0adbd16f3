package reminder

import "time"

// Kind tells the two reminder moments of a task apart.
type Kind string

const (
	KindPreDue Kind = "pre_due"
	KindDue    Kind = "due"
)

// DefaultPreDueOffset is how long before the deadline the warning fires.
const DefaultPreDueOffset = 30 * time.Minute

// Job is an installed reminder. (TaskID, Kind) is unique among pending jobs.
type Job struct {
	TaskID string
	Kind   Kind
	FireAt time.Time
}

// Config configures a Scheduler. Zero values pick the defaults.
type Config struct {
	PreDueOffset    time.Duration
	DispatchTimeout time.Duration
	Clock           Clock
}

type jobKey struct {
	taskID string
	kind   Kind
}

// job is the bookkeeping entry behind a Job. gen identifies this particular
// installation so a timer that fires after being replaced can tell.
type job struct {
	Job
	gen   uint64
	timer Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
