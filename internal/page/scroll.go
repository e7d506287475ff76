package page

import (
	"math"
	"time"
)

// Scroller tracks the page's vertical scroll offset, either jumping
// directly or easing towards a target.
type Scroller struct {
	y        float64
	max      float64
	duration time.Duration

	animating bool
	from, to  float64
	start     time.Time
}

func NewScroller(duration time.Duration) *Scroller {
	return &Scroller{duration: duration}
}

func (s *Scroller) Y() float64 { return s.y }

// Animating reports whether a smooth scroll is in progress.
func (s *Scroller) Animating() bool { return s.animating }

// SetExtent updates the scroll range for a document and viewport height.
func (s *Scroller) SetExtent(docHeight, viewportHeight float64) {
	s.max = math.Max(0, docHeight-viewportHeight)
	s.y = s.clamp(s.y)
	s.to = s.clamp(s.to)
}

func (s *Scroller) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), s.max)
}

// ScrollBy moves immediately and cancels any smooth scroll. It reports
// whether the offset changed.
func (s *Scroller) ScrollBy(dy float64) bool {
	s.animating = false
	old := s.y
	s.y = s.clamp(s.y + dy)
	return s.y != old
}

// ScrollTo starts a smooth scroll to y.
func (s *Scroller) ScrollTo(y float64, now time.Time) {
	s.from = s.y
	s.to = s.clamp(y)
	s.start = now
	s.animating = s.to != s.from
}

// Step advances a smooth scroll to now and reports whether the offset changed.
func (s *Scroller) Step(now time.Time) bool {
	if !s.animating {
		return false
	}
	t := 1.0
	if s.duration > 0 {
		t = clamp01(float64(now.Sub(s.start)) / float64(s.duration))
	}
	old := s.y
	s.y = s.from + (s.to-s.from)*easeInOutCubic(t)
	if t >= 1 {
		s.y = s.to
		s.animating = false
	}
	return s.y != old
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
