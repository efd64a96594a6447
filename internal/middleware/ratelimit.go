package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-menu/internal/config"
)

// LoginRateLimit returns a fixed-window limiter keyed by client IP, meant
// for the login route.  Each window allows cfg.Limit attempts; the counter
// lives in Redis so restarts do not reset it.  When the limiter is disabled
// or no Redis client is available it becomes a pass-through, and a Redis
// error at request time fails open rather than blocking logins.
func LoginRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			window := time.Now().Unix() / int64(cfg.Window/time.Second)
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), window)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After",
					fmt.Sprintf("%d", int(cfg.Window/time.Second)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many attempts"})
			}
			return next(c)
		}
	}
}
