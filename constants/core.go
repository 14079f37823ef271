package constants

import "time"

// Render Loop Timing
const (
	// Cadence is the target interval between successive screen updates
	Cadence = 1 * time.Second

	// InputPollInterval bounds the latency between an interrupt keypress
	// and the stop flag being observed
	InputPollInterval = 100 * time.Millisecond
)

// TimeLayout is the wall-clock format rendered every cycle (24-hour)
const TimeLayout = "15:04:05"
