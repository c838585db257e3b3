package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/utils"
)

var testSecret = []byte("middleware-test-secret")

func newAuthRouter() (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)

	// The client points at a closed port: blacklist checks fail open.
	redisRepo := repositories.NewRedisRepository(redis.NewClient(&redis.Options{Addr: "localhost:1"}))

	var seen uuid.UUID
	router := gin.New()
	router.GET("/protected", Authenticate(testSecret, redisRepo), func(c *gin.Context) {
		val, _ := c.Get("userId")
		seen = val.(uuid.UUID)
		c.Status(http.StatusNoContent)
	})
	return router, &seen
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	router, _ := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	router, _ := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	router, _ := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	router, _ := newAuthRouter()

	token, err := utils.GenerateJWT(uuid.New(), -time.Minute, testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidTokenSetsUserID(t *testing.T) {
	router, seen := newAuthRouter()

	userID := uuid.New()
	token, err := utils.GenerateJWT(userID, time.Minute, testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, userID, *seen)
}
