// Package input watches terminal input for the interrupt combination.
package input

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bigclock/constants"
	"github.com/lixenwraith/bigclock/terminal"
)

// Watcher polls terminal input on a background goroutine and clears
// the shared running flag when Ctrl+C is pressed. It is the flag's
// only writer on the interrupt path and never paints the surface
type Watcher struct {
	surface terminal.Surface
	running *atomic.Bool
	done    chan struct{}
}

// NewWatcher creates a watcher bound to the shared running flag
func NewWatcher(surface terminal.Surface, running *atomic.Bool) *Watcher {
	return &Watcher{
		surface: surface,
		running: running,
		done:    make(chan struct{}),
	}
}

// Start launches the watcher goroutine
func (w *Watcher) Start() {
	go w.watch()
}

// Done is closed once the watcher goroutine has terminated
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) watch() {
	defer close(w.done)

	// Event polling uses a raw goroutine as PollEvent blocks until
	// the surface delivers an event or is finalized
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := w.surface.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(constants.InputPollInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if isInterrupt(ev) {
				w.running.Store(false)
				return
			}
			// All other input is discarded

		case <-ticker.C:
			// Stopped by the render loop, e.g. on a paint failure
			if !w.running.Load() {
				return
			}
		}
	}
}

// isInterrupt reports whether ev is the designated interrupt combination
func isInterrupt(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	return ok && key.Key() == tcell.KeyCtrlC
}
