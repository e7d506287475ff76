// Package viewport keeps the fixed bokeh canvas confined to the part of the
// hero section that is currently on screen.
package viewport

import (
	"math"

	"github.com/iburimskiy/hero-bokeh/internal/config"
	"github.com/iburimskiy/hero-bokeh/internal/surface"
)

// Rect is a vertical extent measured from the top of the viewport.
type Rect struct {
	Top, Bottom float64
}

// Result is the style to apply to the canvas.
type Result struct {
	Visible bool
	Clip    surface.Inset
}

// Opacity is 1 when visible and 0 otherwise.
func (r Result) Opacity() float64 {
	if r.Visible {
		return 1
	}
	return 0
}

// Compute works out the clip for a canvas fixed at the navbar offset.
// A hero entirely above the navbar band or below the viewport hides the
// canvas; it keeps rendering but contributes nothing.
func Compute(hero Rect, viewportHeight, surfaceHeight float64) Result {
	const offset = config.ClipNavbarOffset

	if hero.Bottom <= offset || hero.Top >= viewportHeight {
		return Result{}
	}
	return Result{
		Visible: true,
		Clip: surface.Inset{
			Top:    math.Max(0, hero.Top-offset),
			Bottom: math.Max(0, offset+surfaceHeight-hero.Bottom),
		},
	}
}

// Styler is the part of a canvas the clipper writes to.
type Styler interface {
	Height() int
	SetOpacity(float64)
	SetClip(surface.Inset)
}

// Clipper recomputes and applies the clip on every scroll or resize.
type Clipper struct {
	target Styler
	last   Result
}

func New(target Styler) *Clipper {
	return &Clipper{target: target}
}

// Recompute applies the clip for the current hero position. The previous
// inset is left untouched while hidden.
func (c *Clipper) Recompute(hero Rect, viewportHeight float64) Result {
	r := Compute(hero, viewportHeight, float64(c.target.Height()))
	if r.Visible {
		c.target.SetClip(r.Clip)
	}
	c.target.SetOpacity(r.Opacity())
	c.last = r
	return r
}

// Last returns the most recently applied result.
func (c *Clipper) Last() Result { return c.last }
