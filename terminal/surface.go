package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// styleEmphasis is the single color the rendered time is painted in
var styleEmphasis = tcell.StyleDefault.Foreground(tcell.ColorGreen)

// Surface provides raw-mode terminal access for the render loop.
// Acquire with Init and always release with Fini: a raw-mode terminal
// left unrestored corrupts the user's shell session
type Surface interface {
	// Init enters raw mode and hides the cursor. Called exactly once
	Init() error

	// Fini restores the cursor, leaves raw mode, and clears the
	// screen. Safe to call multiple times
	Fini()

	// Size returns current viewport dimensions in character cells.
	// Callers must re-query every cycle, the terminal may be resized
	Size() (width, height int)

	// Paint clears the viewport, writes each line at the given
	// top-left cell in the emphasis color, and flushes everything as
	// one visible update
	Paint(lines []string, col, row int) error

	// PollEvent blocks until the next terminal event; returns nil
	// once the surface is finalized
	PollEvent() tcell.Event
}

type screenSurface struct {
	screen tcell.Screen
	fini   sync.Once
}

// New creates a Surface over the process's controlling terminal
func New() (Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal unavailable: %w", err)
	}
	return &screenSurface{screen: screen}, nil
}

// NewFromScreen wraps an existing tcell screen, such as a simulation
// screen
func NewFromScreen(screen tcell.Screen) Surface {
	return &screenSurface{screen: screen}
}

func (s *screenSurface) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

func (s *screenSurface) Fini() {
	s.fini.Do(s.screen.Fini)
}

func (s *screenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *screenSurface) Paint(lines []string, col, row int) error {
	s.screen.Clear()
	for dy, line := range lines {
		x := col
		for _, r := range line {
			s.screen.SetContent(x, row+dy, r, nil, styleEmphasis)
			x++
		}
	}
	s.screen.Show()
	return nil
}

func (s *screenSurface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}
