package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contaplus/cxc/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/wacul/ptr"
)

func newRouter(conf *config.Configuration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), RateLimitMiddleware(conf))
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	r := newRouter(&config.Configuration{})
	for i := 0; i < 20; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, resp.Code)
	}
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	conf := &config.Configuration{RateLimit: config.RateLimitConfig{
		RequestsPerSecond:  ptr.Float64(1),
		Burst:              ptr.Int(2),
		CleanupIntervalSec: ptr.Int(60),
	}}
	r := newRouter(conf)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		codes = append(codes, resp.Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}
