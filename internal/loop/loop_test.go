package loop

import (
	"errors"
	"testing"
)

func TestLoopRunsOncePerFrame(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	l := New(q, func() error { count++; return nil }, nil)

	if l.Running() {
		t.Fatal("new loop is running")
	}
	l.Start()
	l.Start() // no second chain
	for i := 0; i < 10; i++ {
		q.RunFrame()
	}
	if count != 10 {
		t.Errorf("ticks = %d, want 10", count)
	}
	if l.Ticks() != 10 {
		t.Errorf("Ticks() = %d, want 10", l.Ticks())
	}
	if q.Pending() != 1 {
		t.Errorf("pending frames = %d, want 1", q.Pending())
	}
}

func TestLoopStopCancelsPendingFrame(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	l := New(q, func() error { count++; return nil }, nil)

	l.Start()
	q.RunFrame()
	q.RunFrame()
	l.Stop()
	if q.Pending() != 0 {
		t.Errorf("pending frames after Stop = %d, want 0", q.Pending())
	}
	for i := 0; i < 5; i++ {
		q.RunFrame()
	}
	if count != 2 {
		t.Errorf("ticks = %d, want 2", count)
	}
	if l.Running() {
		t.Error("Running() = true after Stop")
	}
	l.Stop() // idle stop is a no-op
}

func TestLoopRestart(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	l := New(q, func() error { count++; return nil }, nil)

	l.Start()
	q.RunFrame()
	l.Stop()
	l.Start()
	q.RunFrame()
	q.RunFrame()
	if count != 3 {
		t.Errorf("ticks = %d, want 3", count)
	}
}

func TestLoopStopFromTick(t *testing.T) {
	q := NewFrameQueue()
	var l *Loop
	count := 0
	l = New(q, func() error {
		count++
		if count == 3 {
			l.Stop()
		}
		return nil
	}, nil)

	l.Start()
	for i := 0; i < 10; i++ {
		q.RunFrame()
	}
	if count != 3 {
		t.Errorf("ticks = %d, want 3", count)
	}
}

func TestLoopRestartFromTickKeepsOneChain(t *testing.T) {
	q := NewFrameQueue()
	var l *Loop
	count := 0
	l = New(q, func() error {
		count++
		if count == 1 {
			l.Stop()
			l.Start()
		}
		return nil
	}, nil)

	l.Start()
	q.RunFrame()
	if q.Pending() != 1 {
		t.Fatalf("pending frames after restart = %d, want 1", q.Pending())
	}
	if n := q.RunFrame(); n != 1 {
		t.Errorf("second frame ran %d callbacks, want 1", n)
	}
	if count != 2 {
		t.Errorf("ticks = %d, want 2", count)
	}

	l.Stop()
	if q.Pending() != 0 {
		t.Errorf("pending frames after Stop = %d, want 0", q.Pending())
	}
}

func TestLoopKeepsRunningAfterTickError(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	l := New(q, func() error {
		count++
		return errors.New("boom")
	}, nil)

	l.Start()
	for i := 0; i < 4; i++ {
		q.RunFrame()
	}
	if count != 4 || !l.Running() {
		t.Errorf("ticks = %d running = %v, want 4 and true", count, l.Running())
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	q := NewFrameQueue()
	var order []string
	q.RequestFrame(func() {
		order = append(order, "a")
		q.RequestFrame(func() { order = append(order, "c") })
	})
	q.RequestFrame(func() { order = append(order, "b") })

	if n := q.RunFrame(); n != 2 {
		t.Errorf("first frame ran %d, want 2", n)
	}
	if n := q.RunFrame(); n != 1 {
		t.Errorf("second frame ran %d, want 1", n)
	}
	if got := len(order); got != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}

func TestFrameQueueCancelWithinFrame(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	var second FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })

	q.RunFrame()
	if ran {
		t.Error("callback canceled earlier in the same frame still ran")
	}
	q.CancelFrame(999)
}
