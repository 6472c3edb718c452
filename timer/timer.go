// Package timer implements a queue of pending timers ordered by deadline.
//
// Timers are intrusive: the Timer value is the node of the queue, scheduling
// and cancelling a timer allocate nothing, and cancelling is constant time.
// The queue does not run goroutines or read the system clock, it is advanced
// explicitly by the program, which makes it suitable for simulations and for
// event loops which already track time.
//
// Queues are not safe for concurrent use.
package timer

import (
	"time"

	"github.com/segmentio/intrusive/container/list"
)

// Timer is a pending timer. The zero-value is a valid timer which is not
// scheduled.
type Timer struct {
	list.Link[*Timer]

	// The time at which the timer fires.
	Deadline time.Time
	// Called when the timer fires, with the time the queue was advanced to.
	Func func(now time.Time)
	// Called when the timer is dropped by Queue.Clear without firing.
	Dropped func()

	queue *Queue
}

// Scheduled returns true if t is pending in a queue.
func (t *Timer) Scheduled() bool { return t.queue != nil }

// Release satisfies container.Releaser, it is called when the queue holding t
// is cleared.
func (t *Timer) Release() {
	t.queue = nil
	if t.Dropped != nil {
		t.Dropped()
	}
}

func byDeadline(a, b *Timer) int { return a.Deadline.Compare(b.Deadline) }

// Stats contains counters tracking the usage of a queue.
type Stats struct {
	Scheduled int64
	Cancelled int64
	Fired     int64
	Dropped   int64
}

// Config carries the configuration of timer queues.
type Config struct {
	// The initial time of the queue.
	Start time.Time
	// Maximum number of timers fired by a single call to Advance, zero means
	// no limit.
	MaxFire int
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Queue instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Start is a configuration option setting the initial time of the queue.
//
// Default: the zero time
func Start(t time.Time) Option {
	return option(func(config *Config) { config.Start = t })
}

// MaxFire is a configuration option limiting the number of timers fired by a
// single call to Advance. Expired timers which were not fired remain at the
// front of the queue.
//
// Default: no limit
func MaxFire(n int) Option {
	return option(func(config *Config) { config.MaxFire = n })
}

// Queue is a queue of timers ordered by deadline. Timers with the same
// deadline fire in the order they were scheduled.
type Queue struct {
	pending list.Owned[*Timer]
	now     time.Time
	config  Config
	stats   Stats
}

// New constructs a new Queue instance, using the list of options passed as
// arguments to configure it.
func New(options ...Option) *Queue {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the queue
// configuration instead of a list of options.
func NewWithConfig(config *Config) *Queue {
	return &Queue{now: config.Start, config: *config}
}

// Now returns the time the queue was last advanced to.
func (q *Queue) Now() time.Time { return q.now }

// Len returns the number of pending timers.
//
// Complexity: O(n)
func (q *Queue) Len() int { return q.pending.Len() }

// Stats returns the usage counters of q.
func (q *Queue) Stats() Stats { return q.stats }

// Next returns the deadline of the next timer to fire. The boolean is false if
// no timers are pending.
func (q *Queue) Next() (deadline time.Time, ok bool) {
	if t := q.pending.Front(); t != nil {
		return t.Deadline, true
	}
	return deadline, false
}

// Schedule adds t to the queue. The timer must not be scheduled already.
//
// Complexity: O(n) in the number of timers with a later deadline
func (q *Queue) Schedule(t *Timer) {
	it := q.pending.End()
	for begin := q.pending.Begin(); it != begin; it = it.Prev() {
		if !t.Deadline.Before(it.Prev().Value().Deadline) {
			break
		}
	}
	q.pending.InsertBefore(it, t)
	t.queue = q
	q.stats.Scheduled++
}

// ScheduleBatch adds timers to the queue. The timers are sorted then merged
// with the pending timers in a single pass, which is faster than scheduling
// them one at a time when many timers are added.
//
// Complexity: O(m log m + n)
func (q *Queue) ScheduleBatch(timers ...*Timer) {
	var batch list.Intrusive[*Timer]
	for _, t := range timers {
		batch.PushBack(t)
	}
	list.Sort(batch.Begin(), batch.End(), byDeadline)

	it := q.pending.Begin()
	for {
		t, ok := batch.PopFront()
		if !ok {
			break
		}
		for it != q.pending.End() && !t.Deadline.Before(it.Value().Deadline) {
			it = it.Next()
		}
		q.pending.InsertBefore(it, t)
		t.queue = q
		q.stats.Scheduled++
	}
}

// Cancel removes t from the queue, returning false if t was not pending in q.
//
// Complexity: O(1)
func (q *Queue) Cancel(t *Timer) bool {
	if t.queue != q {
		return false
	}
	t.Unlink()
	t.queue = nil
	q.stats.Cancelled++
	return true
}

// Advance moves the time of the queue to now and fires the timers whose
// deadline is not after now, in deadline order, returning how many fired.
// Timers may schedule or cancel timers of the queue when they fire.
//
// Moving the queue back in time is not supported: the time of the queue is
// left unchanged if now is before it, and only the timers which were already
// expired fire.
func (q *Queue) Advance(now time.Time) (fired int) {
	if now.After(q.now) {
		q.now = now
	}
	for q.config.MaxFire <= 0 || fired < q.config.MaxFire {
		t := q.pending.Front()
		if t == nil || t.Deadline.After(q.now) {
			break
		}
		t.Unlink()
		t.queue = nil
		q.stats.Fired++
		fired++
		if t.Func != nil {
			t.Func(q.now)
		}
	}
	return fired
}

// Clear drops all pending timers, calling their Dropped callbacks.
func (q *Queue) Clear() {
	n := q.pending.Len()
	q.pending.Clear()
	q.stats.Dropped += int64(n)
}
