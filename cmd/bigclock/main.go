package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/bigclock/audio"
	"github.com/lixenwraith/bigclock/clock"
	"github.com/lixenwraith/bigclock/constants"
	"github.com/lixenwraith/bigclock/glyph"
	"github.com/lixenwraith/bigclock/input"
	"github.com/lixenwraith/bigclock/render"
	"github.com/lixenwraith/bigclock/terminal"
)

const (
	logDir      = "logs"
	logFileName = "bigclock.log"

	// debugLogging enables file logging for development builds
	debugLogging = false
)

// setupLogging configures the standard logger. Logging is disabled
// unless debug is set, in which case logs append to logs/bigclock.log
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	return f
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the clock crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBIGCLOCK CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if logFile := setupLogging(debugLogging); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bigclock: %v\n", err)
		os.Exit(1)
	}
}

// run wires the components and owns the release ordering: the surface
// is released on every return path after it is acquired
func run() error {
	// Load the font before entering raw mode so a bad font never
	// leaves the terminal altered
	renderer, err := glyph.NewRenderer()
	if err != nil {
		return err
	}

	surface, err := terminal.New()
	if err != nil {
		return err
	}
	if err := surface.Init(); err != nil {
		return err
	}
	defer surface.Fini()

	running := &atomic.Bool{}
	running.Store(true)

	watcher := input.NewWatcher(surface, running)
	watcher.Start()

	chimer := audio.NewChimer()
	defer chimer.Close()

	loop := render.NewLoop(clock.NewSystemSource(), renderer, surface, running, constants.Cadence)
	loop.SetChimer(chimer)

	return loop.Run()
}
