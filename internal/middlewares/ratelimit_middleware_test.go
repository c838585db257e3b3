package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PrassV/Propo-Staging-sub002/internal/ratelimit"
)

func TestRateLimit_RejectsAfterCap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := ratelimit.NewLimiter(2, 100, true)
	router := gin.New()
	router.GET("/", RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_DisabledLimiterPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := ratelimit.NewLimiter(1, 1, false)
	router := gin.New()
	router.GET("/", RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}
