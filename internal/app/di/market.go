// Package di provides dependency injection factories for creating application components.
package di

import (
	"crypto_dashboard/internal/platform/externalapi/dia"
	"crypto_dashboard/internal/platform/externalapi/yahoo"
	infrahttp "crypto_dashboard/internal/platform/http"
)

// NewQuoteSource creates a fully configured DIA quote client with a
// rate-limited HTTP client.
func NewQuoteSource() *dia.DIAQuote {
	cfg := dia.LoadConfig()
	client := infrahttp.NewClient(cfg.Timeout, cfg.RequestsPerSec)
	return dia.NewDIAQuote(cfg, client)
}

// NewMarket creates a fully configured Yahoo Finance history client with a
// rate-limited HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	client := infrahttp.NewClient(cfg.Timeout, cfg.RequestsPerSec)
	return yahoo.NewYahooMarket(cfg, client)
}
