// Package ratelimit throttles form submissions per client address.
package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/claimwise/site/internal/services/web/platform/requestmeta"
	"golang.org/x/time/rate"
)

const (
	// DefaultIdleTTL is how long an unused client bucket is kept.
	DefaultIdleTTL = 10 * time.Minute
	// HeaderRetryAfter tells rejected clients when to retry (seconds).
	HeaderRetryAfter = "Retry-After"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter holds one token bucket per client key.
type Limiter struct {
	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
}

// New returns a limiter refilling perMinute tokens per minute with the given burst.
// A non-positive perMinute disables limiting.
func New(perMinute float64, burst int) *Limiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60)
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		clients: make(map[string]*clientBucket),
		limit:   limit,
		burst:   burst,
		idleTTL: DefaultIdleTTL,
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may proceed now.
func (l *Limiter) Allow(key string) bool {
	if l == nil || l.limit == rate.Inf {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.evictIdleLocked(now)
	bucket, ok := l.clients[key]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1)
}

// RetryAfter is the whole-second wait until one token refills.
func (l *Limiter) RetryAfter() time.Duration {
	if l == nil || l.limit == rate.Inf || l.limit <= 0 {
		return 0
	}
	wait := time.Duration(float64(time.Second) / float64(l.limit))
	return wait.Round(time.Second)
}

// AllowRequest applies Allow to the request's client address and sets
// Retry-After on w when the request is rejected.
func (l *Limiter) AllowRequest(w http.ResponseWriter, r *http.Request) bool {
	if l.Allow(requestmeta.ClientIP(r)) {
		return true
	}
	if w != nil {
		if retry := l.RetryAfter(); retry > 0 {
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(retry/time.Second)))
		}
	}
	return false
}

// evictIdleLocked drops idle buckets at most once per idleTTL.
func (l *Limiter) evictIdleLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now
	for key, bucket := range l.clients {
		if now.Sub(bucket.lastSeen) > l.idleTTL {
			delete(l.clients, key)
		}
	}
}
