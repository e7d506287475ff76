// Package loop drives per-frame work and the timers that feed it.
//
// Everything here is single-threaded: frame callbacks and timers only run
// when the owner pumps them, so handlers never interleave.
package loop

import "log/slog"

// Loop calls a tick function once per display frame until stopped.
// It holds the handle of the next scheduled frame so Stop can cancel it.
type Loop struct {
	frames  FrameScheduler
	tick    func() error
	log     *slog.Logger
	handle  FrameID
	running bool
	ticks   uint64
}

// New creates an idle loop. A nil logger discards output.
func New(frames FrameScheduler, tick func() error, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loop{frames: frames, tick: tick, log: log}
}

// Start schedules the first tick for the next frame. Starting a running loop
// does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.schedule()
	l.log.Debug("animation loop started")
}

// Stop cancels the pending frame; no further ticks happen.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.frames.CancelFrame(l.handle)
	l.log.Debug("animation loop stopped", "ticks", l.ticks)
}

func (l *Loop) Running() bool { return l.running }

// Ticks is the number of ticks run since creation.
func (l *Loop) Ticks() uint64 { return l.ticks }

func (l *Loop) schedule() {
	l.handle = l.frames.RequestFrame(l.run)
}

func (l *Loop) run() {
	if !l.running {
		return
	}
	l.ticks++
	h := l.handle
	if err := l.tick(); err != nil {
		l.log.Warn("frame tick failed", "tick", l.ticks, "err", err)
	}
	// The tick may have stopped the loop, or restarted it and already
	// scheduled the next frame.
	if l.running && l.handle == h {
		l.schedule()
	}
}
