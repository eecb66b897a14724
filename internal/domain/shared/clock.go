package shared

import "time"

// Clock supplies the current time. Lifecycle deadlines compare against
// an injected Clock so tests can drive completion deterministically.
type Clock interface {
	Now() time.Time
}

// NewRealClock returns a Clock backed by the system time in UTC.
func NewRealClock() Clock {
	return &RealClock{}
}

// RealClock reads the system time.
type RealClock struct{}

func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a manually driven Clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock starting at startTime. A zero
// startTime starts at the current system time.
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Now().UTC()
	}
	return &MockClock{current: startTime}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// SetTime jumps the clock to t.
func (m *MockClock) SetTime(t time.Time) {
	m.current = t
}
