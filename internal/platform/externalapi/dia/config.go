// Package dia provides a client for the DIA decentralized price feed API.
package dia

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the DIA API client.
type Config struct {
	BaseURL        string        // Base URL for the API (e.g. "https://api.diadata.org")
	Timeout        time.Duration // HTTP request timeout
	RequestsPerSec int           // Outbound rate limit (free tier is throttled)
}

// LoadConfig loads DIA configuration from environment variables,
// falling back to the public endpoint defaults.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:        "https://api.diadata.org",
		Timeout:        10 * time.Second,
		RequestsPerSec: 5,
	}
	if v := os.Getenv("DIA_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v, err := strconv.Atoi(os.Getenv("DIA_RPS")); err == nil && v > 0 {
		cfg.RequestsPerSec = v
	}
	return cfg
}
