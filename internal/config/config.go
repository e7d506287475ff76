package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Chris Carson Music"

	// Navbar drawn over the top of the page.
	NavbarHeight     = 94
	MobileBreakpoint = 768
	HamburgerSize    = 36

	// ClipNavbarOffset is where the fixed canvas starts; hero clipping is
	// measured against it. AnchorScrollOffset is the gap left above a
	// section after an anchor jump. They are tuned separately.
	ClipNavbarOffset    = 94
	AnchorScrollOffset  = 100
	ActiveSectionOffset = 150

	ResizeDebounce       = 250 * time.Millisecond
	SmoothScrollDuration = 450 * time.Millisecond
	WheelStep            = 60

	// Bokeh parameters
	ParticleSpacing = 150
	MaxParticles    = 8

	// Preview tap
	LevelWindow    = 2048
	LevelSmoothing = 0.6
)

// Config holds the runtime options parsed from the command line.
type Config struct {
	Width    int
	Height   int
	TPS      int
	Seed     uint64
	Track    string
	LogLevel slog.Level
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Width:    WindowWidth,
		Height:   WindowHeight,
		TPS:      60,
		LogLevel: slog.LevelInfo,
	}
}

// Parse reads options from args (without the program name).
func Parse(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("hero-bokeh", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height in pixels")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second (one animation frame per tick)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed for the bokeh field (0 picks one from the clock)")
	fs.StringVar(&cfg.Track, "track", "", "audio preview to load at start (wav, mp3 or flac)")
	level := fs.String("log-level", "info", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return Config{}, fmt.Errorf("log-level: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Height <= NavbarHeight {
		return errors.New("window height must exceed the navbar")
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	return nil
}
