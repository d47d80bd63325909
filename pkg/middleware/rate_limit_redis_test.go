package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_Basic(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 1, 0, 1*time.Second)) // 1 req/sec, no burst
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// three back-to-back requests span at most two 1s windows with capacity
	// one each, so at least one must pass and at least one must be rejected
	var ok, blocked int
	for i := 0; i < 3; i++ {
		rq := httptest.NewRequest("GET", "/r", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, rq)
		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			blocked++
		}
	}
	require.GreaterOrEqual(t, ok, 1)
	require.GreaterOrEqual(t, blocked, 1)
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(nil, 10, 5, time.Second))
	r.GET("/f", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	rq := httptest.NewRequest("GET", "/f", nil)
	rq.RemoteAddr = "10.9.9.9:1234" // own bucket, independent of other tests
	w := httptest.NewRecorder()
	r.ServeHTTP(w, rq)
	require.Equal(t, http.StatusOK, w.Code)
}
