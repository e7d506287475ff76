package loop

import "time"

// Debouncer delays fn until Trigger has been quiet for the given period,
// then calls it once with the most recent value.
type Debouncer[T any] struct {
	timers  *TimerQueue
	delay   time.Duration
	fn      func(T)
	value   T
	pending *Timer
}

func NewDebouncer[T any](timers *TimerQueue, delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{timers: timers, delay: delay, fn: fn}
}

// Trigger records v and restarts the quiet period.
func (d *Debouncer[T]) Trigger(v T) {
	if d.pending != nil {
		d.pending.Stop()
	}
	d.value = v
	d.pending = d.timers.AfterFunc(d.delay, func() {
		d.pending = nil
		d.fn(d.value)
	})
}

// Stop drops any pending call.
func (d *Debouncer[T]) Stop() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *Debouncer[T]) Pending() bool { return d.pending != nil }
