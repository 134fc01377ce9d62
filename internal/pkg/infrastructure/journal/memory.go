package journal

import (
	"context"
	"slices"
	"sync"
)

type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemory() *Memory {
	return &Memory{events: []Event{}}
}

func (m *Memory) Write(ctx context.Context, events []Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, events...)
	return nil
}

// Events returns a copy of everything written so far, oldest first.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.events)
}
