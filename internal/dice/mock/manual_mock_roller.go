package mockdice

import (
	"sync"
)

// ManualMockRoller implements dice.Roller for testing with predetermined values
type ManualMockRoller struct {
	mu     sync.Mutex
	values []float64
	index  int
	calls  int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		values: []float64{},
	}
}

// SetNextValue queues the next draw
func (m *ManualMockRoller) SetNextValue(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append(m.values, v)
}

// SetValues replaces the queued draws
func (m *ManualMockRoller) SetValues(values []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = values
	m.index = 0
}

// Reset clears all values and the call count
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = []float64{}
	m.index = 0
	m.calls = 0
}

// Calls returns how many draws were taken
func (m *ManualMockRoller) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Value returns the next queued value. Once the queue is drained the last
// value repeats; an empty queue yields 0.
func (m *ManualMockRoller) Value() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if len(m.values) == 0 {
		return 0
	}
	if m.index >= len(m.values) {
		return m.values[len(m.values)-1]
	}

	v := m.values[m.index]
	m.index++
	return v
}
