package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"siteadmin/internal/lib/logger/utils"
	"siteadmin/internal/lib/response"
)

const (
	limiterTTL    = 10 * time.Minute
	cleanupPeriod = time.Minute
)

type limiterEntry struct {
	l        *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client address. Buckets idle for
// longer than the TTL are swept in the background.
type RateLimiter struct {
	mu    sync.Mutex
	m     map[string]*limiterEntry
	rps   float64
	burst int
	ttl   time.Duration
	now   func() time.Time

	startCleanup sync.Once
	stopOnce     sync.Once
	stopCh       chan struct{}
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &RateLimiter{
		m:      make(map[string]*limiterEntry),
		rps:    rps,
		burst:  burst,
		ttl:    limiterTTL,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	l.startCleanup.Do(func() {
		go l.cleanupLoop()
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.m[key]; ok {
		e.lastSeen = l.now()
		return e.l
	}
	lim := rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.m[key] = &limiterEntry{l: lim, lastSeen: l.now()}
	return lim
}

func (l *RateLimiter) Allow(key string) bool {
	return l.get(key).Allow()
}

// Stop ends the background sweep.
func (l *RateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// sweep drops buckets not used within the TTL.
func (l *RateLimiter) sweep() {
	cutoff := l.now().Add(-l.ttl)
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, e := range l.m {
		if e.lastSeen.Before(cutoff) {
			delete(l.m, k)
		}
	}
}

func (l *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.stopCh:
			return
		}
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.Allow(key) {
			utils.Logger.Warn("rate limit exceeded", zap.String("client", key), zap.String("path", r.URL.Path))
			response.Error(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
