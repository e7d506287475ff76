package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/hero-bokeh/internal/config"
	"github.com/iburimskiy/hero-bokeh/internal/page"
)

func (g *Game) handleInput(now time.Time) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := g.player.Pick(); err != nil {
			Logger().Warn("preview", "err", err)
			g.lastErr = err
		} else {
			g.lastErr = nil
		}
	}

	g.handleScrollKeys(now)

	g.links = page.NavLinks(g.layout, g.size.Width, &g.menu)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(x, y, now)
	}
	return nil
}

func (g *Game) handleScrollKeys(now time.Time) {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scrollBy(-dy * config.WheelStep)
	}

	step := float64(g.size.Height - config.NavbarHeight)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scrollBy(config.WheelStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scrollBy(-config.WheelStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.scrollBy(step)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scrollBy(-step)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroller.ScrollTo(0, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroller.ScrollTo(g.layout.Height, now)
	}
}

func (g *Game) scrollBy(dy float64) {
	if g.scroller.ScrollBy(dy) {
		g.scrolled = true
	}
}

func (g *Game) click(x, y int, now time.Time) {
	if page.Compact(g.size.Width) && image.Pt(x, y).In(page.HamburgerBounds(g.size.Width)) {
		g.menu.Toggle()
		g.links = page.NavLinks(g.layout, g.size.Width, &g.menu)
		return
	}

	ln, ok := page.HitLink(g.links, x, y)
	if !ok {
		return
	}
	g.menu.LinkClicked()
	g.links = page.NavLinks(g.layout, g.size.Width, &g.menu)
	if target, ok := g.layout.AnchorTarget(ln.ID); ok {
		g.scroller.ScrollTo(target, now)
		Logger().Debug("anchor scroll", "id", ln.ID, "target", target)
	}
}
