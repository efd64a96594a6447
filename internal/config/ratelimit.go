package config

import (
	"time"
)

// RateLimitConfig controls the fixed-window limiter applied to the login
// route.  The limiter only guards the transport layer against credential
// stuffing; the identity service itself performs no lockout.
type RateLimitConfig struct {
	Enabled bool          // master switch
	Limit   int           // attempts allowed per window
	Window  time.Duration // window length
	Prefix  string        // redis key prefix
}

// LoadRateLimitConfig reads limiter settings from the environment.  The
// limiter is enabled by default but only takes effect when a Redis client
// is available.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("LOGIN_RATE_LIMIT_ENABLED", true),
		Limit:   envIntDefault("LOGIN_RATE_LIMIT", 10),
		Window:  envDur("LOGIN_RATE_WINDOW", time.Minute),
		Prefix:  envStrDefault("LOGIN_RATE_PREFIX", "rl:login"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}

func envBool(k string, d bool) bool {
	switch envStrDefault(k, "") {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := envStrDefault(k, "")
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		return dur
	}
	return d
}
