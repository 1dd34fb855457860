package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryWindow struct {
	start int64
	count int
}

// MemoryLimiter is a single-process fixed-window limiter.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	windows map[string]*memoryWindow
}

// NewMemoryLimiter creates a MemoryLimiter
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*memoryWindow),
	}
}

// Allow implements service.RateLimiter
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := windowStart(l.now(), l.window)
	w, ok := l.windows[key]
	if !ok || w.start != start {
		// drop expired windows so the map stays bounded by active keys
		for k, old := range l.windows {
			if old.start != start {
				delete(l.windows, k)
			}
		}
		w = &memoryWindow{start: start}
		l.windows[key] = w
	}
	w.count++

	return w.count <= l.limit, nil
}
