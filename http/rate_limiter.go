package http

import (
	"sync"
	"time"

	"investment-calculator/config"
)

const (
	defaultIdleTTL         = 1 * time.Hour
	defaultCleanupInterval = 30 * time.Minute
)

// limits are the rate limiter settings taken from config.Config.
type limits struct {
	capacity     int
	refillEvery  time.Duration
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

func limitsFrom(cfg config.Config) limits {
	l := limits{
		capacity:     cfg.RateLimitCapacity,
		refillEvery:  cfg.RateLimitRefill,
		idleTTL:      cfg.RateLimitIdleTTL,
		cleanupEvery: cfg.RateLimitCleanupInterval,
	}
	if l.capacity <= 0 {
		l.capacity = 1
	}
	if l.refillEvery <= 0 {
		l.refillEvery = time.Minute
	}
	if l.idleTTL <= 0 {
		l.idleTTL = defaultIdleTTL
	}
	if l.cleanupEvery <= 0 {
		l.cleanupEvery = defaultCleanupInterval
	}
	return l
}

// bucket is one client's allowance. It refills completely once refillEvery
// has passed since the last refill.
type bucket struct {
	tokens     int
	refilledAt time.Time
	lastSeen   time.Time
}

// take consumes a token, or reports how long until the next refill.
func (b *bucket) take(now time.Time, l limits) (bool, time.Duration) {
	b.lastSeen = now
	if now.Sub(b.refilledAt) >= l.refillEvery {
		b.tokens = l.capacity
		b.refilledAt = now
	}
	if b.tokens <= 0 {
		return false, b.refilledAt.Add(l.refillEvery).Sub(now)
	}
	b.tokens--
	return true, 0
}

// RateLimiter keeps a bucket per client and forgets clients that have been
// idle longer than the configured TTL.
type RateLimiter struct {
	mu       sync.Mutex
	limits   limits
	buckets  map[string]*bucket
	now      func() time.Time
	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(cfg config.Config) *RateLimiter {
	rl := &RateLimiter{
		limits:  limitsFrom(cfg),
		buckets: make(map[string]*bucket),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

// Allow consumes one request for client. When the bucket is empty it returns
// false and the time left until it refills.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[client]
	if !ok {
		b = &bucket{tokens: r.limits.capacity, refilledAt: now}
		r.buckets[client] = b
	}
	return b.take(now, r.limits)
}

// Stop ends the eviction goroutine. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

func (r *RateLimiter) evictLoop() {
	ticker := time.NewTicker(r.limits.cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.limits.idleTTL)
	for client, b := range r.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(r.buckets, client)
		}
	}
}

func (r *RateLimiter) trackedClients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buckets)
}
