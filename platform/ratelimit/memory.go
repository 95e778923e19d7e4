package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepEvery bounds how many windows are kept before expired ones are dropped. A sweep runs at most once per window.
const sweepEvery = 1024

type window struct {
	start time.Time
	count int64
}

// Memory is a fixed window counter local to the process
type Memory struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

// NewMemory builds a limiter admitting limit requests per window for each key
func NewMemory(limit int, size time.Duration) *Memory {
	return &Memory{
		limit:   limit,
		window:  size,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

func (m *Memory) Allow(_ context.Context, key string) (Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if len(m.windows) >= sweepEvery && now.Sub(m.lastSweep) >= m.window {
		m.sweep(now)
	}

	w, ok := m.windows[key]
	if !ok || now.Sub(w.start) >= m.window {
		w = &window{start: now}
		m.windows[key] = w
	}
	w.count++

	return decide(m.limit, w.count, w.start.Add(m.window).Sub(now)), nil
}

func (m *Memory) sweep(now time.Time) {
	m.lastSweep = now
	for k, w := range m.windows {
		if now.Sub(w.start) >= m.window {
			delete(m.windows, k)
		}
	}
}
