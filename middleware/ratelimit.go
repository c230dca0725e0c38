package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// ipRateLimiter keeps one token bucket per client IP. Entries idle past the
// TTL are evicted so the map does not grow with every visitor ever seen.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiterEntry
	r        rate.Limit
	burst    int
	ttl      time.Duration
}

type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(r rate.Limit, burst int, ttl time.Duration) *ipRateLimiter {
	rl := &ipRateLimiter{
		limiters: make(map[string]*ipLimiterEntry),
		r:        r,
		burst:    burst,
		ttl:      ttl,
	}
	go rl.evictLoop()
	return rl
}

func (rl *ipRateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (rl *ipRateLimiter) evictLoop() {
	for range time.Tick(rl.ttl) {
		cutoff := time.Now().Add(-rl.ttl)
		rl.mu.Lock()
		for ip, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// TrackingRateLimit throttles the public reference lookup to slow down
// reference-number enumeration. 1 request/sec with a burst of 5 per IP.
func TrackingRateLimit() fiber.Handler {
	limiter := newIPRateLimiter(rate.Limit(1), 5, 10*time.Minute)

	return func(c *fiber.Ctx) error {
		if !limiter.get(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later",
			})
		}
		return c.Next()
	}
}
