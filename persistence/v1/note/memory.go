package note

import (
	"context"
	"sort"
	"sync"
)

// Memory keeps notes in the process memory. It backs the memory:// connection url, used for local runs and tests.
type Memory struct {
	mu    sync.RWMutex
	notes map[string]Note
}

func NewMemory() *Memory {
	return &Memory{notes: make(map[string]Note)}
}

func (m *Memory) List(_ context.Context) ([]Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := make([]Note, 0, len(m.notes))
	for _, n := range m.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Id < notes[j].Id })
	return notes, nil
}

func (m *Memory) Insert(_ context.Context, n Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[n.Id] = n
	return nil
}

func (m *Memory) Find(_ context.Context, id string) (Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return n, nil
}

func (m *Memory) Update(_ context.Context, n Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.notes[n.Id]
	if !ok {
		return ErrNotFound
	}
	current.Title = n.Title
	current.Content = n.Content
	current.UpdatedAt = n.UpdatedAt
	m.notes[n.Id] = current
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}
