// Package dto defines data transfer objects for the quotes HTTP API.
package dto

// QuoteResponse is the price-card payload for one symbol.
type QuoteResponse struct {
	Symbol    string  `json:"symbol"`     // Catalog symbol code
	Name      string  `json:"name"`       // Asset name
	Price     float64 `json:"price"`      // Latest price in USD
	Change24h float64 `json:"change_24h"` // 24-hour change in percent
	FetchedAt string  `json:"fetched_at"` // RFC 3339 snapshot time
}
