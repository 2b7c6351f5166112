// Package yahoo provides a client for the Yahoo Finance v8 chart API.
package yahoo

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the Yahoo Finance chart API client.
type Config struct {
	BaseURL        string        // Base URL for the API (e.g. "https://query1.finance.yahoo.com")
	Timeout        time.Duration // HTTP request timeout
	RequestsPerSec int           // Outbound rate limit
}

// LoadConfig loads Yahoo Finance configuration from environment variables,
// falling back to the public endpoint defaults.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:        "https://query1.finance.yahoo.com",
		Timeout:        15 * time.Second,
		RequestsPerSec: 5,
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v, err := strconv.Atoi(os.Getenv("YAHOO_RPS")); err == nil && v > 0 {
		cfg.RequestsPerSec = v
	}
	return cfg
}
