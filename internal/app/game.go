// Package app runs the page in an ebiten window: it feeds resize and scroll
// events to the hero effect, handles navigation input and composites
// everything onto the screen.
package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/hero-bokeh/internal/config"
	"github.com/iburimskiy/hero-bokeh/internal/hero"
	"github.com/iburimskiy/hero-bokeh/internal/loop"
	"github.com/iburimskiy/hero-bokeh/internal/page"
	"github.com/iburimskiy/hero-bokeh/internal/preview"
	"github.com/iburimskiy/hero-bokeh/internal/surface"
)

type Game struct {
	cfg   config.Config
	clock loop.Clock

	effect *hero.Effect
	player *preview.Player

	layout   page.Layout
	scroller *page.Scroller
	menu     page.Menu
	links    []page.Link
	active   string

	size     surface.Size
	scrolled bool
	lastTick time.Time

	canvasImg *ebiten.Image
	uploaded  uint64

	lastErr error
}

// NewGame prepares the page for a window of cfg's size. The hero effect is
// mounted on the first tick, once the real window size is known.
func NewGame(cfg config.Config) *Game {
	return newGame(cfg, loop.SystemClock{})
}

func newGame(cfg config.Config, clock loop.Clock) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log := Logger()
	log.Debug("bokeh seed", "seed", seed)

	g := &Game{
		cfg:      cfg,
		clock:    clock,
		effect:   hero.New(clock, rand.New(rand.NewPCG(seed, seed^0x5deece66d)), log.With("component", "hero")),
		player:   preview.NewPlayer(log.With("component", "preview")),
		scroller: page.NewScroller(config.SmoothScrollDuration),
	}
	g.applySize(surface.Size{Width: cfg.Width, Height: cfg.Height})

	if cfg.Track != "" {
		if err := g.player.Load(cfg.Track); err != nil {
			log.Warn("preview track not loaded", "track", cfg.Track, "err", err)
			g.lastErr = err
		}
	}
	return g
}

func (g *Game) Update() error {
	now := g.clock.Now()
	dt := time.Second / time.Duration(g.cfg.TPS)
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	if !g.effect.Mounted() {
		if err := g.mount(); err != nil {
			return err
		}
	}

	if err := g.handleInput(now); err != nil {
		return err
	}
	if g.scroller.Step(now) {
		g.scrolled = true
	}
	if g.scrolled {
		g.onScroll()
	}

	g.effect.Pump()
	g.player.Update(dt)
	return nil
}

func (g *Game) mount() error {
	if err := g.effect.Mount(g.heroContainer(), g.layout.HeroRect(g.scroller.Y()), float64(g.size.Height)); err != nil {
		return fmt.Errorf("mount hero: %w", err)
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := surface.Size{Width: outsideWidth, Height: outsideHeight}
	if s != g.size {
		g.applySize(s)
		// The canvas and field follow after the debounce.
		g.effect.Resized(g.heroContainer())
	}
	return outsideWidth, outsideHeight
}

func (g *Game) applySize(s surface.Size) {
	g.size = s
	g.layout = page.NewLayout(float64(s.Height))
	g.scroller.SetExtent(g.layout.Height, float64(s.Height))
	g.scrolled = true
}

// heroContainer is the rendered size of the box the canvas fills.
func (g *Game) heroContainer() surface.Size {
	return surface.Size{Width: g.size.Width, Height: int(g.layout.Hero().Height)}
}

// onScroll is the page's scroll handler: clip the canvas and move the
// active nav highlight.
func (g *Game) onScroll() {
	g.scrolled = false
	y := g.scroller.Y()
	g.effect.Scrolled(g.layout.HeroRect(y), float64(g.size.Height))
	if active := g.layout.ActiveSection(y); active != g.active {
		g.active = active
		Logger().Debug("active section", "id", active)
	}
}

// Close tears the page down.
func (g *Game) Close() {
	if g.effect.Mounted() {
		if err := g.effect.Dispose(); err != nil {
			Logger().Warn("dispose hero", "err", err)
		}
	}
	g.player.Close()
	if g.canvasImg != nil {
		g.canvasImg.Deallocate()
		g.canvasImg = nil
	}
}
