package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client with one token bucket per client
type RateLimiter struct {
	limiters        sync.Map
	rate            int
	burst           int
	idleTimeout     time.Duration
	cleanupInterval time.Duration
	skipPaths       map[string]struct{}
}

type limiterEntry struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	seen    time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.seen = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.seen)
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given burst.
// Health endpoints are never limited.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	return &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		idleTimeout:     10 * time.Minute,
		cleanupInterval: 5 * time.Minute,
		skipPaths: map[string]struct{}{
			"/health":  {},
			"/healthz": {},
		},
	}
}

// StartCleanup evicts idle client limiters until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(rl.cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				rl.evictIdle(now)
			}
		}
	}()
}

func (rl *RateLimiter) evictIdle(now time.Time) int {
	evicted := 0
	rl.limiters.Range(func(key, value any) bool {
		if entry, ok := value.(*limiterEntry); ok && entry.idleSince(now) > rl.idleTimeout {
			rl.limiters.Delete(key)
			evicted++
		}
		return true
	})
	return evicted
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.rate), rl.burst), seen: now}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// clientIdentifier keys a limiter by forwarded address, then by client ip
func clientIdentifier(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return "ip:" + forwardedFor
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// Middleware returns the gin handler enforcing the limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, skip := rl.skipPaths[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		clientID := clientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))

		if !limiter.Allow() {
			logger.WithComponent(logger.ComponentMiddleware).Warn("Rate limit exceeded",
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path))

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": 1,
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Next()
	}
}
