package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hero-bokeh/internal/config"
	"github.com/iburimskiy/hero-bokeh/internal/page"
)

var (
	colorBackground = color.RGBA{R: 14, G: 16, B: 24, A: 255}
	colorHero       = color.RGBA{R: 24, G: 28, B: 44, A: 255}
	colorSectionA   = color.RGBA{R: 20, G: 22, B: 32, A: 255}
	colorSectionB   = color.RGBA{R: 26, G: 28, B: 40, A: 255}
	colorNavbar     = color.RGBA{R: 10, G: 11, B: 18, A: 235}
	colorLink       = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	colorActive     = color.RGBA{R: 255, G: 223, B: 186, A: 255}
	colorDropdown   = color.RGBA{R: 16, G: 18, B: 28, A: 245}
	colorMeterBack  = color.RGBA{R: 40, G: 44, B: 60, A: 255}
	colorMeter      = color.RGBA{R: 186, G: 225, B: 255, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawSections(screen)
	g.drawBokeh(screen)
	g.drawNavbar(screen)
}

func (g *Game) drawSections(screen *ebiten.Image) {
	scrollY := g.scroller.Y()
	w := float32(g.size.Width)
	for i, s := range g.layout.Sections {
		top := s.Top - scrollY
		if top > float64(g.size.Height) || s.Bottom()-scrollY < 0 {
			continue
		}
		bg := colorSectionA
		switch {
		case s.ID == page.HeroID:
			bg = colorHero
		case i%2 == 0:
			bg = colorSectionB
		}
		vector.DrawFilledRect(screen, 0, float32(top), w, float32(s.Height), bg, false)

		textY := int(top) + 60
		if s.ID == page.HeroID {
			textY = int(top + s.Height/2)
		}
		ebitenutil.DebugPrintAt(screen, s.Title, 40, textY)
		ebitenutil.DebugPrintAt(screen, s.Blurb, 40, textY+20)
	}
}

// drawBokeh composites the canvas at its fixed position under the navbar,
// honouring the clip inset and opacity the viewport clipper set.
func (g *Game) drawBokeh(screen *ebiten.Image) {
	cv := g.effect.Canvas()
	if cv == nil {
		return
	}
	st := cv.Style()
	if st.Hidden() {
		return
	}

	w, h := cv.Width(), cv.Height()
	if g.canvasImg == nil || g.canvasImg.Bounds().Dx() != w || g.canvasImg.Bounds().Dy() != h {
		if g.canvasImg != nil {
			g.canvasImg.Deallocate()
		}
		g.canvasImg = ebiten.NewImage(w, h)
		g.uploaded = ^uint64(0)
	}
	if frame := g.effect.Frame(); frame != g.uploaded {
		g.canvasImg.WritePixels(cv.Pixels())
		g.uploaded = frame
	}

	vis := st.Clip.Visible(w, h)
	if vis.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(config.ClipNavbarOffset+vis.Min.Y))
	op.ColorScale.ScaleAlpha(float32(st.Opacity))
	screen.DrawImage(g.canvasImg.SubImage(vis).(*ebiten.Image), op)
}

func (g *Game) drawNavbar(screen *ebiten.Image) {
	w := float32(g.size.Width)
	vector.DrawFilledRect(screen, 0, 0, w, config.NavbarHeight, colorNavbar, false)
	ebitenutil.DebugPrintAt(screen, config.WindowTitle, 24, 24)

	// Preview status and level meter under the brand.
	status := g.player.Status()
	if g.lastErr != nil {
		status += " | error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 24, 48)
	vector.DrawFilledRect(screen, 24, 70, 120, 6, colorMeterBack, false)
	vector.DrawFilledRect(screen, 24, 70, float32(120*g.player.Level()), 6, colorMeter, false)

	compact := page.Compact(g.size.Width)
	if compact {
		g.drawHamburger(screen)
		if g.menu.Open() && len(g.links) > 0 {
			last := g.links[len(g.links)-1].Bounds
			vector.DrawFilledRect(screen, 0, config.NavbarHeight, w, float32(last.Max.Y-config.NavbarHeight), colorDropdown, false)
		}
	}

	for _, ln := range g.links {
		b := ln.Bounds
		if ln.ID == g.active {
			// underline the active link
			vector.DrawFilledRect(screen, float32(b.Min.X+10), float32(b.Max.Y-10), float32(b.Dx()-20), 2, colorActive, false)
		} else if !compact {
			vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, colorLink, false)
		}
		ebitenutil.DebugPrintAt(screen, ln.Label, b.Min.X+14, b.Min.Y+(b.Dy()-16)/2)
	}
}

func (g *Game) drawHamburger(screen *ebiten.Image) {
	b := page.HamburgerBounds(g.size.Width)
	clr := colorLink
	if g.menu.Open() {
		clr = colorActive
	}
	bar := float32(b.Dy()) / 7
	for i := 0; i < 3; i++ {
		y := float32(b.Min.Y) + bar*float32(1+2*i)
		vector.DrawFilledRect(screen, float32(b.Min.X), y, float32(b.Dx()), bar, clr, false)
	}
}
