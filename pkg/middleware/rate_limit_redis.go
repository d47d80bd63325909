package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/scriblr/blog-service/pkg/metrics"
)

// RedisRateLimitMiddleware provides a coarse fixed-window Redis-backed limiter
// keyed by client IP.
// Algorithm: INCR a per-window key and compare against allowed = floor(rps*windowSeconds)+burst.
// This is intentionally simple and deterministic (suitable for distributed deployments).
func RedisRateLimitMiddleware(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		// fallback to in-memory if no client
		return RateLimitMiddleware(rps, burst)
	}
	windowSeconds := int(window.Seconds())
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	allowedPerWindow := int(rps*float64(windowSeconds)) + burst
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		windowID := time.Now().Unix() / int64(windowSeconds)
		key := fmt.Sprintf("rl:ip:%s:%d", ip, windowID)

		ctx := c.Request.Context()
		n, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis trouble should not take the API down; let the request through
			metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
			c.Next()
			return
		}
		if n == 1 {
			client.Expire(ctx, key, time.Duration(windowSeconds)*time.Second)
		}
		if int(n) > allowedPerWindow {
			c.Header("Retry-After", fmt.Sprintf("%d", windowSeconds))
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
