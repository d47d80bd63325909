package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/scriblr/blog-service/pkg/metrics"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	allowedBefore := testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory"))

	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()

	// two quick requests should pass
	r.ServeHTTP(w, req)
	req2 := httptest.NewRequest("GET", "/ok", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)

	// verify metrics incremented for memory limiter
	require.Equal(t, allowedBefore+2.0, testutil.ToFloat64(metrics.RateLimitAllowed.WithLabelValues("memory")))
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	rejectedBefore := testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory"))

	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	req := httptest.NewRequest("GET", "/limited", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// burst exhausted, immediate second request must be rejected
	req2 := httptest.NewRequest("GET", "/limited", nil)
	req2.RemoteAddr = "10.1.2.3:5555"
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
	require.Equal(t, "1", w2.Header().Get("Retry-After"))

	require.Equal(t, rejectedBefore+1.0, testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("memory")))
}
