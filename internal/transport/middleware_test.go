package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() { gin.SetMode(gin.TestMode) }

func newLimitedRouter(limit float64, burst int) *gin.Engine {
	r := gin.New()
	// Mirrors the router layout: the limiter guards /auth, nothing else.
	r.POST("/auth/login", RateLimit(limit, burst), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine, method, path, remoteAddr string) int {
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitExhaustsBurst(t *testing.T) {
	r := newLimitedRouter(0, 2)

	assert.Equal(t, http.StatusOK, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
	assert.Equal(t, http.StatusOK, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := newLimitedRouter(0, 1)

	assert.Equal(t, http.StatusOK, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, hit(r, http.MethodPost, "/auth/login", "203.0.113.9:1000"))
}

func TestRateLimitLeavesOtherRoutesAlone(t *testing.T) {
	r := newLimitedRouter(0, 1)

	assert.Equal(t, http.StatusOK, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodPost, "/auth/login", "198.51.100.7:1000"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/open", "198.51.100.7:1000"))
	}
}
