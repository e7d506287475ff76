package page

import (
	"image"

	"github.com/iburimskiy/hero-bokeh/internal/config"
)

const (
	charWidth   = 6 // ebitenutil debug font
	linkPadding = 14
	linkGap     = 8
	menuRow     = 44
)

// Link is a clickable navigation entry.
type Link struct {
	ID     string
	Label  string
	Bounds image.Rectangle
}

// Compact reports whether the window is narrow enough for the hamburger menu.
func Compact(width int) bool {
	return width < config.MobileBreakpoint
}

// HamburgerBounds is where the menu toggle sits in compact layouts.
func HamburgerBounds(width int) image.Rectangle {
	x := width - config.HamburgerSize - 20
	y := (config.NavbarHeight - config.HamburgerSize) / 2
	return image.Rect(x, y, x+config.HamburgerSize, y+config.HamburgerSize)
}

// NavLinks lays out the navigation links for a window width. Wide windows
// get a row in the navbar; compact ones get a dropdown only while the menu
// is open.
func NavLinks(l Layout, width int, menu *Menu) []Link {
	links := make([]Link, 0, len(l.Sections))
	if Compact(width) {
		if !menu.Open() {
			return nil
		}
		y := config.NavbarHeight
		for _, s := range l.Sections {
			links = append(links, Link{ID: s.ID, Label: s.Title, Bounds: image.Rect(0, y, width, y+menuRow)})
			y += menuRow
		}
		return links
	}

	x := width - 20
	for i := len(l.Sections) - 1; i >= 0; i-- {
		s := l.Sections[i]
		w := len(s.Title)*charWidth + 2*linkPadding
		x -= w
		top := (config.NavbarHeight - menuRow) / 2
		links = append(links, Link{ID: s.ID, Label: s.Title, Bounds: image.Rect(x, top, x+w, top+menuRow)})
		x -= linkGap
	}
	// restore page order
	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}
	return links
}

// HitLink returns the link under (x, y), if any.
func HitLink(links []Link, x, y int) (Link, bool) {
	pt := image.Pt(x, y)
	for _, ln := range links {
		if pt.In(ln.Bounds) {
			return ln, true
		}
	}
	return Link{}, false
}

// Menu is the hamburger dropdown used on narrow windows.
type Menu struct {
	open bool
}

func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu and the hamburger's active state together.
func (m *Menu) Toggle() { m.open = !m.open }

// LinkClicked closes the menu after any navigation link is used.
func (m *Menu) LinkClicked() { m.open = false }
