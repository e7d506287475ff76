// Package preview plays a local audio track behind the hero banner.
package preview

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hero-bokeh/internal/audio"
	"github.com/iburimskiy/hero-bokeh/internal/config"
)

// Player owns the speaker and the currently loaded track.
type Player struct {
	log *slog.Logger

	track *audio.Track
	ctrl  *beep.Ctrl
	tap   *audio.Tap
	ended atomic.Bool

	format   beep.Format
	initDone bool
	paused   bool
	level    float64
	position time.Duration
}

func NewPlayer(log *slog.Logger) *Player {
	return &Player{log: log}
}

// Pick asks for a track with a native file dialog and plays it. A canceled
// dialog is not an error.
func (p *Player) Pick() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Preview a track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select track: %w", err)
	}
	return p.Load(filename)
}

// Load decodes path and starts playing it, replacing any current track.
func (p *Player) Load(path string) error {
	tr, err := audio.Decode(path)
	if err != nil {
		return err
	}

	bufferSize := tr.Format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(tr.Format.SampleRate, bufferSize); err != nil {
			_ = tr.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != tr.Format.SampleRate:
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		if err := speaker.Init(tr.Format.SampleRate, bufferSize); err != nil {
			_ = tr.Close()
			return fmt.Errorf("reinit speaker: %w", err)
		}
	default:
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.release()

	tap := audio.NewTap(tr.Streamer, config.LevelWindow)
	ctrl := &beep.Ctrl{Streamer: tap}
	p.track, p.tap, p.ctrl = tr, tap, ctrl
	p.format = tr.Format
	p.paused = false
	p.position = 0
	p.ended.Store(false)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// Runs on the speaker goroutine; Update does the cleanup.
		p.ended.Store(true)
	})))
	p.log.Info("preview playing", "track", filepath.Base(path), "duration", tr.Duration())
	return nil
}

// TogglePause pauses or resumes the current track.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Update advances the position estimate and smooths the level meter. Call
// once per tick.
func (p *Player) Update(dt time.Duration) {
	if p.ended.Load() {
		p.log.Debug("preview finished")
		p.release()
		p.ended.Store(false)
	}
	if p.track == nil {
		p.level = 0
		return
	}
	if !p.paused {
		p.position = min(p.position+dt, p.track.Duration())
	}
	lvl := p.tap.Level()
	p.level = config.LevelSmoothing*p.level + (1-config.LevelSmoothing)*lvl
}

// Level is the smoothed output level in [0, 1].
func (p *Player) Level() float64 { return p.level }

// Status is a one-line description for the navbar.
func (p *Player) Status() string {
	if p.track == nil {
		return "L: listen"
	}
	state := "playing"
	if p.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s %s %s/%s", state, filepath.Base(p.track.Path),
		audio.FormatDuration(p.position), audio.FormatDuration(p.track.Duration()))
}

func (p *Player) release() {
	if p.track != nil {
		if err := p.track.Close(); err != nil {
			p.log.Warn("close preview", "err", err)
		}
	}
	p.track, p.tap, p.ctrl = nil, nil, nil
	p.position = 0
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	if p.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.release()
}
