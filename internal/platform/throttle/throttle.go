package throttle

import (
	"context"
	"sync"
	"time"
)

// Limiter counts attempts per key inside a fixed window.
type Limiter interface {
	// Hit records one attempt for key and reports whether the key is still
	// within its limit.
	Hit(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type window struct {
	count   int
	expires time.Time
}

type memoryLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	now     func() time.Time
	entries map[string]*window
}

// NewMemory returns a process-local Limiter.
func NewMemory(limit int, period time.Duration) Limiter {
	return newMemory(limit, period, time.Now)
}

func newMemory(limit int, period time.Duration, now func() time.Time) *memoryLimiter {
	if limit <= 0 {
		limit = 5
	}
	if period <= 0 {
		period = 5 * time.Minute
	}
	return &memoryLimiter{limit: limit, period: period, now: now, entries: map[string]*window{}}
}

func (m *memoryLimiter) Hit(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	w, ok := m.entries[key]
	if !ok || !now.Before(w.expires) {
		w = &window{expires: now.Add(m.period)}
		m.entries[key] = w
		m.sweep(now)
	}
	w.count++
	return w.count <= m.limit, nil
}

func (m *memoryLimiter) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// sweep drops expired windows; caller holds mu.
func (m *memoryLimiter) sweep(now time.Time) {
	for k, w := range m.entries {
		if !now.Before(w.expires) {
			delete(m.entries, k)
		}
	}
}
