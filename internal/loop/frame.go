package loop

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameScheduler runs callbacks once, on the next display frame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id       FrameID
	fn       func()
	canceled bool
}

// FrameQueue is a FrameScheduler driven by calling RunFrame once per
// displayed frame. Callbacks requested while a frame runs wait for the next.
type FrameQueue struct {
	next    FrameID
	pending []*frameRequest
	live    map[FrameID]*frameRequest
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{live: make(map[FrameID]*frameRequest)}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	r := &frameRequest{id: q.next, fn: fn}
	q.pending = append(q.pending, r)
	q.live[r.id] = r
	return r.id
}

// CancelFrame drops a pending callback. Unknown or already-run ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if r, ok := q.live[id]; ok {
		r.canceled = true
		delete(q.live, id)
	}
}

// RunFrame runs the callbacks queued before this frame and returns how many ran.
func (q *FrameQueue) RunFrame() int {
	batch := q.pending
	q.pending = nil

	n := 0
	for _, r := range batch {
		if r.canceled {
			continue
		}
		delete(q.live, r.id)
		r.fn()
		n++
	}
	return n
}

// Pending is the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int { return len(q.live) }
