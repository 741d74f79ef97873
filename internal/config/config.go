// Load envs from .env, fill in defaults, fail fast on the values the
// server cannot run without.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendAPIURL  string
	SessionSecret  string
	BackendTimeout time.Duration
	DefaultLimit   int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		BackendAPIURL:  os.Getenv("BACKEND_API_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		BackendTimeout: 10 * time.Second,
		DefaultLimit:   10,
	}

	// Set default values if not set
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.BackendAPIURL == "" {
		cfg.BackendAPIURL = "http://localhost:3000"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set in your environment (.env)")
	}

	return cfg
}
