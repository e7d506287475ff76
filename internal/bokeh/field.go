package bokeh

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/hero-bokeh/internal/config"
)

// Count is the number of particles a surface of the given width holds.
func Count(width float64) int {
	n := int(width / config.ParticleSpacing)
	if n < 0 {
		return 0
	}
	if n > config.MaxParticles {
		return config.MaxParticles
	}
	return n
}

// Field owns the particles of one surface.
type Field struct {
	rng       *rand.Rand
	bounds    Bounds
	particles []Particle
}

func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Rebuild throws away the current particles and scatters a fresh set sized
// for b. Nothing carries over.
func (f *Field) Rebuild(b Bounds) {
	f.bounds = b
	n := Count(b.Width)
	f.particles = make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, NewParticle(b, f.rng))
	}
}

// Tick moves every particle one frame and paints it onto dc.
func (f *Field) Tick(dc *gg.Context) error {
	for i := range f.particles {
		p := &f.particles[i]
		Update(p, f.bounds, f.rng)
		if err := Draw(*p, dc); err != nil {
			return fmt.Errorf("draw particle %d: %w", i, err)
		}
	}
	return nil
}

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}
