package clock

import (
	"sync"
	"time"
)

// MockSource is a hand-cranked clock for tests: it reports the same
// instant until moved with SetTime or Advance. Safe for concurrent use
type MockSource struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockSource starts the mock at the given instant
func NewMockSource(start time.Time) *MockSource {
	return &MockSource{now: start}
}

// Now returns the mocked instant
func (m *MockSource) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime moves the mock to t
func (m *MockSource) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the mock forward by d
func (m *MockSource) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
