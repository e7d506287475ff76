package loop

import (
	"sort"
	"time"
)

// Timer is a one-shot callback registered with a TimerQueue.
type Timer struct {
	due     time.Time
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the timer from firing. It reports whether the call
// stopped it, false if it had already fired or been stopped.
func (t *Timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// TimerQueue holds timers that fire from Fire, on the caller's goroutine,
// so callbacks never interleave with frame work.
type TimerQueue struct {
	clock  Clock
	timers []*Timer
}

func NewTimerQueue(clock Clock) *TimerQueue {
	return &TimerQueue{clock: clock}
}

// AfterFunc arranges for fn to run on the first Fire at or after d from now.
func (q *TimerQueue) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{due: q.clock.Now().Add(d), fn: fn}
	q.timers = append(q.timers, t)
	return t
}

// Fire runs every due timer in deadline order and returns how many ran.
func (q *TimerQueue) Fire() int {
	now := q.clock.Now()

	var due, rest []*Timer
	for _, t := range q.timers {
		switch {
		case t.stopped:
		case !t.due.After(now):
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	q.timers = rest

	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	n := 0
	for _, t := range due {
		// An earlier callback may have stopped this one.
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
		n++
	}
	return n
}

// Len is the number of timers still waiting.
func (q *TimerQueue) Len() int {
	n := 0
	for _, t := range q.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
