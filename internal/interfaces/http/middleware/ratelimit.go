// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foundry-cms-api/internal/config"
	redisinfra "foundry-cms-api/internal/infrastructure/persistence/redis"
	"foundry-cms-api/pkg/logger"
)

// RateLimit 基于 Redis 滑动窗口的限流中间件，按来源 IP 与端点分桶。
// 限流器故障时放行，避免 Redis 抖动放大为业务故障。
func RateLimit(cfg config.RateLimitConfig, limiter *redisinfra.RateLimiter) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limit := cfg.RequestsPerMinute
	if limit <= 0 {
		limit = 120
	}

	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		key := redisinfra.BuildRateLimitKey(c.ClientIP(), c.Request.Method+":"+endpoint)

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, time.Minute)
		if err != nil {
			logger.Warn(c.Request.Context(), "rate limiter unavailable, allowing request",
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":     429,
				"message":  "rate limit exceeded",
				"trace_id": c.GetString("trace_id"),
			})
			return
		}

		c.Next()
	}
}
