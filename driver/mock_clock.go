package driver

import (
	"context"
	"sync"
	"time"
)

// MockClock is a Clock that returns immediately and records every requested sleep
type MockClock struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  []time.Duration
	onSleep func(n int)
}

// NewMockClock creates a mock clock starting at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// OnSleep registers a hook run after each sleep with the running sleep count
// Tests use it to cancel the loop context after a number of ticks
func (m *MockClock) OnSleep(fn func(n int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onSleep = fn
}

// Sleep advances mock time by d without blocking
func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.now = m.now.Add(d)
	m.sleeps = append(m.sleeps, d)
	n := len(m.sleeps)
	hook := m.onSleep
	m.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return ctx.Err()
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Sleeps returns a copy of the recorded sleep durations
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
