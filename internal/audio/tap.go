package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap passes a stream through unchanged while tracking the energy of the
// most recent window of samples for the level meter.
type Tap struct {
	src beep.Streamer

	mu     sync.Mutex
	energy []float64 // squared mono samples, ring ordered by next
	next   int
	filled int
	sum    float64
}

// NewTap wraps src with a level window of the given number of samples.
func NewTap(src beep.Streamer, window int) *Tap {
	return &Tap{src: src, energy: make([]float64, max(window, 1))}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 {
		return n, ok
	}

	t.mu.Lock()
	for _, s := range samples[:n] {
		mono := (s[0] + s[1]) * 0.5
		e := mono * mono
		t.sum += e - t.energy[t.next]
		t.energy[t.next] = e
		t.next++
		if t.next == len(t.energy) {
			t.next = 0
			// Resum once per lap so rounding never accumulates.
			t.sum = 0
			for _, v := range t.energy {
				t.sum += v
			}
		}
		if t.filled < len(t.energy) {
			t.filled++
		}
	}
	t.mu.Unlock()
	return n, ok
}

func (t *Tap) Err() error { return t.src.Err() }

// Window is the number of samples the level is taken over.
func (t *Tap) Window() int { return len(t.energy) }

// Level is the compressed mono RMS of the window, in [0, 1]. Before the
// window fills it covers the samples seen so far.
func (t *Tap) Level() float64 {
	t.mu.Lock()
	sum, filled := t.sum, t.filled
	t.mu.Unlock()

	if filled == 0 || sum <= 0 {
		return 0
	}
	rms := math.Sqrt(sum / float64(filled))
	return math.Min(1, math.Pow(rms, 0.3))
}
