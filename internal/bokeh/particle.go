// Package bokeh simulates the soft light orbs drifting through the hero banner.
//
// A Particle is a plain record; Reset, NewParticle, Update and Draw operate on
// it. All randomness comes from a caller-supplied *rand.Rand so a seeded
// generator reproduces the same field.
package bokeh

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

const (
	MinSize    = 40.0
	MaxSize    = 120.0
	MinSpeedY  = 0.05
	MaxSpeedY  = 0.2
	MaxDriftX  = 0.075
	MinOpacity = 0.1
	MaxOpacity = 0.4

	// EdgeMargin keeps a particle fully off-surface when it respawns or wraps.
	EdgeMargin = 20.0
)

// Bounds is the pixel size of the surface particles live on.
type Bounds struct {
	Width, Height float64
}

// Particle is one light orb.
type Particle struct {
	X, Y    float64
	Size    float64
	SpeedX  float64
	SpeedY  float64
	Opacity float64
	Color   Color
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Reset re-randomizes every attribute and parks the particle just above the
// top edge so it drifts in without popping.
func Reset(p *Particle, b Bounds, rng *rand.Rand) {
	p.X = uniform(rng, 0, b.Width)
	p.Size = uniform(rng, MinSize, MaxSize)
	p.Y = -p.Size - EdgeMargin
	p.SpeedY = uniform(rng, MinSpeedY, MaxSpeedY)
	p.SpeedX = uniform(rng, -MaxDriftX, MaxDriftX)
	p.Opacity = uniform(rng, MinOpacity, MaxOpacity)
	p.Color = Palette[rng.IntN(len(Palette))]
}

// NewParticle builds a particle scattered somewhere across the surface, used
// when a field is first populated.
func NewParticle(b Bounds, rng *rand.Rand) Particle {
	var p Particle
	Reset(&p, b, rng)
	p.Y = uniform(rng, 0, b.Height)
	p.Opacity = uniform(rng, MinOpacity, MaxOpacity)
	return p
}

// Update advances p by one frame. Leaving through the bottom resets the
// particle; leaving sideways only moves it to the opposite edge.
func Update(p *Particle, b Bounds, rng *rand.Rand) {
	p.Y += p.SpeedY
	p.X += p.SpeedX

	if p.Y > b.Height+p.Size+EdgeMargin {
		Reset(p, b, rng)
	}
	if p.X < -p.Size-EdgeMargin {
		p.X = b.Width + p.Size + EdgeMargin
	}
	if p.X > b.Width+p.Size+EdgeMargin {
		p.X = -p.Size - EdgeMargin
	}
}

// Gradient returns the radial brush used to paint p.
func Gradient(p Particle) *gg.RadialGradientBrush {
	return gg.NewRadialGradientBrush(p.X, p.Y, 0, p.Size).
		AddColorStop(0, p.Color.WithAlpha(p.Opacity*0.8)).
		AddColorStop(0.4, p.Color.WithAlpha(p.Opacity*0.4)).
		AddColorStop(1, p.Color.WithAlpha(0))
}

// Draw paints p as a soft glow over whatever dc already holds.
func Draw(p Particle, dc *gg.Context) error {
	dc.SetFillBrush(Gradient(p))
	dc.DrawCircle(p.X, p.Y, p.Size)
	return dc.Fill()
}
