// Package render drives the once-per-second display cycle: read the
// clock, render the glyph block, center it against the live viewport,
// paint.
package render

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/bigclock/clock"
	"github.com/lixenwraith/bigclock/glyph"
	"github.com/lixenwraith/bigclock/terminal"
)

// Chimer receives the top-of-hour notification. *audio.Chimer
// satisfies it; a nil Chimer disables chiming
type Chimer interface {
	ChimeHour()
}

// Loop runs until the shared running flag clears or a cycle fails.
// The surface is mutated only from this loop; the input watcher only
// touches the flag
type Loop struct {
	clock    clock.Source
	renderer *glyph.Renderer
	surface  terminal.Surface
	chimer   Chimer
	running  *atomic.Bool
	cadence  time.Duration
}

// NewLoop creates the render loop. The running flag must be set before
// Run is called
func NewLoop(src clock.Source, renderer *glyph.Renderer, surface terminal.Surface, running *atomic.Bool, cadence time.Duration) *Loop {
	return &Loop{
		clock:    src,
		renderer: renderer,
		surface:  surface,
		running:  running,
		cadence:  cadence,
	}
}

// SetChimer attaches the optional hour chimer. Nil disables chiming
func (l *Loop) SetChimer(c Chimer) {
	l.chimer = c
}

// Run executes the loop until the running flag reads false at the top
// of an iteration (nil return) or a cycle fails (error return). On
// error the flag is cleared so the input watcher terminates too. The
// caller owns surface release on every return path
func (l *Loop) Run() error {
	lastHour := -1

	for l.running.Load() {
		start := time.Now()

		now := l.clock.Now()
		text := clock.Timestamp(now)

		block, err := l.renderer.Render(text)
		if err != nil {
			l.running.Store(false)
			return fmt.Errorf("render %q: %w", text, err)
		}

		// Queried fresh every cycle: the terminal may have been resized
		width, height := l.surface.Size()
		offset := Center(block.Width(), block.Height(), width, height)

		if err := l.surface.Paint(block.Lines, offset.Col, offset.Row); err != nil {
			l.running.Store(false)
			return fmt.Errorf("paint: %w", err)
		}

		if hour := now.Hour(); hour != lastHour {
			// The first iteration records the hour without chiming
			if lastHour >= 0 && l.chimer != nil {
				l.chimer.ChimeHour()
			}
			lastHour = hour
		}

		// A slow cycle shortens or eliminates the sleep; frames are
		// never skipped and there is no catch-up
		if remaining := l.cadence - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}

	return nil
}
