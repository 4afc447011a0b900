package auth

import (
	"sync"
	"time"
)

// login attempt limits per client
const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 5 * time.Minute
)

// Limiter counts attempts per key in fixed windows
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	start time.Time
	count int
}

// NewLimiter makes a limiter allowing max attempts per window for each key
func NewLimiter(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{max: max, window: window, buckets: map[string]*bucket{}, now: time.Now}
}

// Allow records an attempt for key and reports whether it is within the limit
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) >= l.window {
		l.prune(now)
		l.buckets[key] = &bucket{start: now, count: 1}
		return true
	}
	b.count++
	return b.count <= l.max
}

// prune drops expired buckets, called with the lock held
func (l *Limiter) prune(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.start) >= l.window {
			delete(l.buckets, k)
		}
	}
}
