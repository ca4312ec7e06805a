package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"recruitment-portal-backend/config"
	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/pkg/logger"
	pkgredis "recruitment-portal-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimit applies a fixed-window per-IP limit backed by Redis. When
// Redis is unavailable the limiter falls back to an in-memory window so a
// cache outage never takes the API down with it.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	threshold := cfg.RateLimitGlobalThreshold

	fallback := newMemoryLimiter(window, threshold)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		count, err := incrWindow(c, ip, window)
		if err != nil {
			// Redis down or not configured
			if !fallback.Allow(ip) {
				tooManyRequests(c)
				return
			}
			c.Next()
			return
		}

		if count > int64(threshold) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
	c.Abort()
}

func incrWindow(c *gin.Context, ip string, window time.Duration) (int64, error) {
	client := pkgredis.Client()
	if client == nil {
		return 0, fmt.Errorf("redis not configured")
	}

	key := fmt.Sprintf("ratelimit:%s", ip)
	ctx := c.Request.Context()

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Warn("rate limit incr failed", "error", err)
		return 0, err
	}
	if count == 1 {
		// First hit opens the window
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			logger.Log.Warn("rate limit expire failed", "error", err)
		}
	}
	return count, nil
}

// memoryLimiter is the in-process fallback window.
type memoryLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	threshold int
	counts    map[string]int
	resetAt   time.Time
}

func newMemoryLimiter(window time.Duration, threshold int) *memoryLimiter {
	return &memoryLimiter{
		window:    window,
		threshold: threshold,
		counts:    make(map[string]int),
		resetAt:   time.Now().Add(window),
	}
}

func (m *memoryLimiter) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if time.Now().After(m.resetAt) {
		m.counts = make(map[string]int)
		m.resetAt = time.Now().Add(m.window)
	}

	m.counts[ip]++
	return m.counts[ip] <= m.threshold
}
