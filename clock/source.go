package clock

import "time"

// Source provides the current wall-clock time to the render loop.
// The loop depends on this interface so tests can substitute a
// deterministic clock
type Source interface {
	Now() time.Time
}

// SystemSource reads the real system clock with monotonic readings
type SystemSource struct{}

// NewSystemSource creates a system clock source
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// Now returns the current local time
func (s *SystemSource) Now() time.Time {
	return time.Now()
}
