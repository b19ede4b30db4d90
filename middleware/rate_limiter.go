package middleware

import (
	"net/http"
	"time"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RateLimiter throttles per IP, per method, per endpoint using a Redis
// counter. When Redis is unreachable the request passes through: the
// storefront stays up without rate limiting rather than going down with it.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			log.Warnf("[rate-limiter] redis unavailable, failing open: %v", err)
			c.Next()
			return
		}

		// First request in the window: set expiry and a stable resetAt.
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
			resetAt := time.Now().Add(window)
			config.RedisClient.Set(config.Ctx, resetKey, resetAt.Unix(), window)
		}

		resetAtUnix, _ := config.RedisClient.Get(config.Ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Stored for the response envelope.
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
