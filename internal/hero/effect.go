// Package hero ties the bokeh field, its canvas and the viewport clip into
// one effect with an explicit mount/dispose lifecycle.
package hero

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/iburimskiy/hero-bokeh/internal/bokeh"
	"github.com/iburimskiy/hero-bokeh/internal/config"
	"github.com/iburimskiy/hero-bokeh/internal/loop"
	"github.com/iburimskiy/hero-bokeh/internal/surface"
	"github.com/iburimskiy/hero-bokeh/internal/viewport"
)

// ErrNotMounted is returned by operations that need a mounted effect.
var ErrNotMounted = errors.New("hero effect not mounted")

// Effect owns every piece of the hero animation. Nothing is shared through
// package state; one page mounts one Effect.
type Effect struct {
	log *slog.Logger
	rng *rand.Rand

	frames *loop.FrameQueue
	timers *loop.TimerQueue
	anim   *loop.Loop
	resize *loop.Debouncer[surface.Size]

	canvas  *surface.Canvas
	field   *bokeh.Field
	clipper *viewport.Clipper

	hero      viewport.Rect
	viewportH float64
	frame     uint64
	rebuilds  int
}

// New creates an unmounted effect. Timers read clock; rng seeds every
// particle.
func New(clock loop.Clock, rng *rand.Rand, log *slog.Logger) *Effect {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e := &Effect{
		log:    log,
		rng:    rng,
		frames: loop.NewFrameQueue(),
		timers: loop.NewTimerQueue(clock),
		field:  bokeh.NewField(rng),
	}
	e.anim = loop.New(e.frames, e.tick, log)
	e.resize = loop.NewDebouncer(e.timers, config.ResizeDebounce, func(s surface.Size) {
		if err := e.rebuild(s); err != nil {
			e.log.Error("rebuild after resize", "err", err)
		}
	})
	return e
}

// Mount sizes the canvas to its container, fills the field, starts the
// animation and applies the first clip.
func (e *Effect) Mount(container surface.Size, hero viewport.Rect, viewportH float64) error {
	if e.canvas != nil {
		return errors.New("hero effect already mounted")
	}
	e.canvas = surface.New(container)
	e.clipper = viewport.New(e.canvas)
	if err := e.rebuild(container); err != nil {
		if cerr := e.canvas.Close(); cerr != nil {
			e.log.Warn("close canvas after failed mount", "err", cerr)
		}
		e.canvas, e.clipper = nil, nil
		return fmt.Errorf("mount hero effect: %w", err)
	}
	e.anim.Start()
	e.Scrolled(hero, viewportH)
	e.log.Info("hero effect mounted", "width", container.Width, "height", container.Height, "particles", e.field.Len())
	return nil
}

// Resized reports a new container size. The canvas and field follow once
// resizes have been quiet for the debounce period.
func (e *Effect) Resized(container surface.Size) {
	if e.canvas == nil {
		return
	}
	e.resize.Trigger(container)
}

// Scrolled recomputes the clip straight away.
func (e *Effect) Scrolled(hero viewport.Rect, viewportH float64) {
	e.hero, e.viewportH = hero, viewportH
	if e.clipper == nil {
		return
	}
	e.clipper.Recompute(hero, viewportH)
}

// Pump fires due timers and runs one display frame. Call once per tick.
func (e *Effect) Pump() {
	e.timers.Fire()
	e.frames.RunFrame()
}

func (e *Effect) rebuild(container surface.Size) error {
	if err := e.canvas.Resize(container); err != nil {
		return err
	}
	e.field.Rebuild(bokeh.Bounds{Width: float64(e.canvas.Width()), Height: float64(e.canvas.Height())})
	e.rebuilds++
	e.log.Debug("bokeh field rebuilt", "width", e.canvas.Width(), "height", e.canvas.Height(), "particles", e.field.Len())
	// Surface height feeds the bottom inset.
	e.clipper.Recompute(e.hero, e.viewportH)
	return nil
}

func (e *Effect) tick() error {
	e.canvas.Clear()
	if err := e.field.Tick(e.canvas.Context()); err != nil {
		return fmt.Errorf("frame %d: %w", e.frame+1, err)
	}
	e.frame++
	return nil
}

// Dispose stops the animation and pending resize, then frees the canvas.
func (e *Effect) Dispose() error {
	if e.canvas == nil {
		return ErrNotMounted
	}
	e.anim.Stop()
	e.resize.Stop()
	err := e.canvas.Close()
	e.canvas, e.clipper = nil, nil
	e.log.Info("hero effect disposed", "frames", e.frame)
	return err
}

func (e *Effect) Mounted() bool { return e.canvas != nil }

func (e *Effect) Running() bool { return e.anim.Running() }

// Canvas is nil until Mount.
func (e *Effect) Canvas() *surface.Canvas { return e.canvas }

func (e *Effect) Field() *bokeh.Field { return e.field }

// Frame counts completed frames; it changes whenever the canvas was redrawn.
func (e *Effect) Frame() uint64 { return e.frame }

// Rebuilds counts how many times the field has been rebuilt.
func (e *Effect) Rebuilds() int { return e.rebuilds }
