package loop

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTimerQueueFiresInOrder(t *testing.T) {
	clk := NewManualClock(epoch)
	q := NewTimerQueue(clk)

	var got []int
	q.AfterFunc(30*time.Millisecond, func() { got = append(got, 3) })
	q.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	late := q.AfterFunc(time.Second, func() { got = append(got, 9) })

	clk.Advance(5 * time.Millisecond)
	if n := q.Fire(); n != 0 {
		t.Errorf("Fire before deadline ran %d", n)
	}
	clk.Advance(25 * time.Millisecond)
	if n := q.Fire(); n != 2 {
		t.Errorf("Fire ran %d, want 2", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("order = %v, want [1 3]", got)
	}
	if !late.Stop() {
		t.Error("Stop on pending timer = false")
	}
	if late.Stop() {
		t.Error("second Stop = true")
	}
	clk.Advance(time.Hour)
	q.Fire()
	if len(got) != 2 {
		t.Errorf("stopped timer fired: %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}

type size struct{ w, h int }

func TestDebounceBurstFiresOnceWithLastValue(t *testing.T) {
	clk := NewManualClock(epoch)
	q := NewTimerQueue(clk)

	var calls []size
	d := NewDebouncer(q, 250*time.Millisecond, func(s size) { calls = append(calls, s) })

	for i := 1; i <= 5; i++ {
		d.Trigger(size{100 * i, 50 * i})
		clk.Advance(200 * time.Millisecond)
		q.Fire()
	}
	if len(calls) != 0 {
		t.Fatalf("fired during burst: %v", calls)
	}
	if !d.Pending() {
		t.Fatal("Pending() = false during burst")
	}

	clk.Advance(50 * time.Millisecond)
	q.Fire()
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	if calls[0] != (size{500, 250}) {
		t.Errorf("value = %v, want last trigger {500 250}", calls[0])
	}
	if d.Pending() {
		t.Error("Pending() = true after firing")
	}

	clk.Advance(time.Second)
	q.Fire()
	if len(calls) != 1 {
		t.Errorf("fired again without trigger: %v", calls)
	}
}

func TestDebounceSeparateBursts(t *testing.T) {
	clk := NewManualClock(epoch)
	q := NewTimerQueue(clk)
	count := 0
	d := NewDebouncer(q, 250*time.Millisecond, func(int) { count++ })

	d.Trigger(1)
	clk.Advance(300 * time.Millisecond)
	q.Fire()
	d.Trigger(2)
	clk.Advance(300 * time.Millisecond)
	q.Fire()
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestDebounceStop(t *testing.T) {
	clk := NewManualClock(epoch)
	q := NewTimerQueue(clk)
	fired := false
	d := NewDebouncer(q, 250*time.Millisecond, func(int) { fired = true })

	d.Trigger(1)
	d.Stop()
	clk.Advance(time.Second)
	q.Fire()
	if fired {
		t.Error("stopped debouncer fired")
	}
}
