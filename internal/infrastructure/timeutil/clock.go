package timeutil

import "time"

// Clock abstracts time.Now so timings and timestamps can be fixed in tests.
type Clock interface {
	Now() time.Time
}

// RealClock uses the system clock.
type RealClock struct{}

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a fixed time that tests move explicitly.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock returns a MockClock fixed at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
