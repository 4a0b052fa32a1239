package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually driven Clock for tests and headless runs
// With a step set, every Now call also moves time forward by the step,
// which lets budgeted loops observe time passing without sleeping
type MockTimeProvider struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	reads int
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the current time, then applies the step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.step)
	m.reads++
	return t
}

// SetTime jumps to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// SetStep sets the automatic advance per Now call, 0 disables it
func (m *MockTimeProvider) SetStep(d time.Duration) {
	m.mu.Lock()
	m.step = d
	m.mu.Unlock()
}

// Reads reports how many times Now was called
func (m *MockTimeProvider) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}
