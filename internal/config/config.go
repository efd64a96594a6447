package config // package config loads application configuration from environment variables

import (
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a working default so the service
// starts with zero configuration: on first run it creates the database file
// under ./data and listens on :8080.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBPath       string // path of the sqlite database file
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables, falling back
// to defaults when a variable is unset or empty.
func Load() Config {
	return Config{
		Env:          envStrDefault("APP_ENV", "dev"),
		Port:         envStrDefault("APP_PORT", "8080"),
		DBPath:       envStrDefault("DB_PATH", "data/restaurant_menu.db"),
		JWTSecret:    envStrDefault("JWT_SECRET", "dev-insecure-secret"),
		AccessTTLMin: envIntDefault("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   envIntDefault("BCRYPT_COST", 10),
	}
}

// envStrDefault returns the value of the environment variable or the given
// default when it is unset or empty.
func envStrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envIntDefault is like envStrDefault but converts the value to an integer.
// Unparseable values fall back to the default instead of aborting startup.
func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
