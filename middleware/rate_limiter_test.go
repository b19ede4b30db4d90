package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimitedRouter(t *testing.T, maxRequests int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	old := config.RedisClient
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { config.RedisClient = old })

	router := gin.New()
	router.GET("/ping", RateLimiter(maxRequests, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "pong", nil))
	})
	return router
}

func ping(t *testing.T, router *gin.Engine) (int, models.ApiResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRateLimiterEchoesRateInEnvelope(t *testing.T) {
	router := setupLimitedRouter(t, 5)

	code, body := ping(t, router)

	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Rate)
	assert.Equal(t, 5, body.Rate.Limit)
	assert.Equal(t, 4, body.Rate.Remaining)
	assert.Positive(t, body.Rate.ResetInSeconds)
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	router := setupLimitedRouter(t, 2)

	for i := 0; i < 2; i++ {
		code, _ := ping(t, router)
		require.Equal(t, http.StatusOK, code)
	}

	code, body := ping(t, router)

	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.True(t, body.Error)
	require.NotNil(t, body.Rate)
	assert.Zero(t, body.Rate.Remaining)
}

// A dead Redis must not take the storefront down with it: requests pass
// through unlimited instead of failing.
func TestRateLimiterFailsOpenWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	old := config.RedisClient
	config.RedisClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { config.RedisClient = old })

	router := gin.New()
	router.GET("/ping", RateLimiter(1, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "pong", nil))
	})

	for i := 0; i < 3; i++ {
		code, body := ping(t, router)
		require.Equal(t, http.StatusOK, code)
		assert.Nil(t, body.Rate)
	}
}
