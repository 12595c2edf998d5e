// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the frontend gateway.
type Config struct {
	Port                   string
	APIBaseURL             string // remote REST API, e.g. "https://.../api"
	RedisURL               string // durable session storage
	RefreshIntervalMinutes int    // how often the job collection is re-fetched
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	interval := 15
	if s := os.Getenv("REFRESH_INTERVAL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_MINUTES must be a positive integer, got %q", s)
		}
		interval = v
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:                   port,
		APIBaseURL:             apiURL,
		RedisURL:               redisURL,
		RefreshIntervalMinutes: interval,
	}, nil
}
