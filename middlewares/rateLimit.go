package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/profit_backend/config"
	"github.com/gin-gonic/gin"
)

// RateLimiter limits requests per client IP using redis INCR/EXPIRE.
// Env:
// - RATE_LIMIT_WINDOW_SECONDS (default 60)
// - RATE_LIMIT_MAX_REQUESTS (default 600)
// Redis is an optimization only: when it is not configured or a call
// fails, the limiter fails open rather than blocking traffic.
func RateLimiter() gin.HandlerFunc {
	window := time.Duration(int64FromEnv("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	limit := int64FromEnv("RATE_LIMIT_MAX_REQUESTS", 600)

	return func(c *gin.Context) {
		client := config.GetRedisDB()
		if client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, window)
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds", int(window.Seconds())),
			})
			return
		}

		c.Next()
	}
}

func int64FromEnv(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
