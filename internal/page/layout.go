// Package page models the single marketing page: its sections, scroll
// position, navigation links and the mobile menu.
package page

import (
	"math"

	"github.com/iburimskiy/hero-bokeh/internal/config"
	"github.com/iburimskiy/hero-bokeh/internal/viewport"
)

// HeroID is the section the bokeh canvas belongs to.
const HeroID = "home"

const minHeroHeight = 360

// Section is a block of the page in document coordinates.
type Section struct {
	ID     string
	Title  string
	Blurb  string
	Top    float64
	Height float64
}

func (s Section) Bottom() float64 { return s.Top + s.Height }

var sectionDefs = []struct {
	id, title, blurb string
	height           float64
}{
	{HeroID, "Home", "Chris Carson - songs from the quiet hours", 0},
	{"about", "About", "Singer-songwriter. Piano, guitar and late trains.", 520},
	{"music", "Music", "New record out now. Press L to load a preview, Space to pause.", 600},
	{"shows", "Shows", "Spring tour dates announced soon.", 480},
	{"contact", "Contact", "Booking and press: hello@chriscarsonmusic.com", 420},
}

// Layout is the stacked sections for a given viewport.
type Layout struct {
	Sections []Section
	Height   float64
}

// NewLayout stacks the sections below the navbar. The hero fills the rest of
// the first screen.
func NewLayout(viewportHeight float64) Layout {
	l := Layout{Sections: make([]Section, 0, len(sectionDefs))}
	top := float64(config.NavbarHeight)
	for _, def := range sectionDefs {
		h := def.height
		if def.id == HeroID {
			h = math.Max(viewportHeight-config.NavbarHeight, minHeroHeight)
		}
		l.Sections = append(l.Sections, Section{
			ID:     def.id,
			Title:  def.title,
			Blurb:  def.blurb,
			Top:    top,
			Height: h,
		})
		top += h
	}
	l.Height = top
	return l
}

// Section looks up a section by id.
func (l Layout) Section(id string) (Section, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Hero returns the hero section.
func (l Layout) Hero() Section {
	s, _ := l.Section(HeroID)
	return s
}

// HeroRect is the hero's extent relative to the viewport at scroll offset y.
func (l Layout) HeroRect(scrollY float64) viewport.Rect {
	h := l.Hero()
	return viewport.Rect{Top: h.Top - scrollY, Bottom: h.Bottom() - scrollY}
}

// ActiveSection returns the id of the section to highlight: the last one
// whose top, less the highlight offset, has been scrolled past.
func (l Layout) ActiveSection(scrollY float64) string {
	current := ""
	for _, s := range l.Sections {
		if scrollY >= s.Top-config.ActiveSectionOffset {
			current = s.ID
		}
	}
	return current
}

// AnchorTarget is the scroll offset an anchor link jumps to, leaving room
// for the fixed navbar. Unknown ids report false.
func (l Layout) AnchorTarget(id string) (float64, bool) {
	s, ok := l.Section(id)
	if !ok {
		return 0, false
	}
	return s.Top - config.AnchorScrollOffset, true
}
