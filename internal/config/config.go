// Package config loads the runtime configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for a fresh install. The admin pair is deliberately documented:
// it exists so an operator can log into an empty store immediately, and it
// should be changed right after.
const (
	DefaultDBPath        = "data/shoofli.db"
	DefaultAdminEmail    = "admin@shoofli.com"
	DefaultAdminPassword = "admin123"

	// devSessionSecret signs session tokens when SHOOFLI_SESSION_SECRET is
	// unset. Fine for a local single-user store; set a real secret anywhere
	// the store file leaves your machine.
	devSessionSecret = "shoofli-dev-session-secret"
)

// Config carries everything the composition root needs to wire the core.
type Config struct {
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration // 0 means the auth package default
	AdminEmail    string
	AdminPassword string
	BcryptCost    int // 0 means the auth package default
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in when present; real environment variables
// win.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return Config{
		DBPath:        envOr("SHOOFLI_DB", DefaultDBPath),
		SessionSecret: envOr("SHOOFLI_SESSION_SECRET", devSessionSecret),
		SessionTTL:    envDuration("SHOOFLI_SESSION_TTL"),
		AdminEmail:    envOr("SHOOFLI_ADMIN_EMAIL", DefaultAdminEmail),
		AdminPassword: envOr("SHOOFLI_ADMIN_PASSWORD", DefaultAdminPassword),
		BcryptCost:    envInt("SHOOFLI_BCRYPT_COST"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
