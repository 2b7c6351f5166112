// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Quote is a point-in-time price snapshot for one symbol, shown on a
// dashboard price card. It is constructed per request and never persisted.
type Quote struct {
	Symbol    string    // Catalog symbol code (e.g. "BTC-USD")
	Name      string    // Human-readable asset name
	Price     float64   // Latest price in USD, non-negative
	Change24h float64   // 24-hour change in percent, signed; 0 when the source omits it
	FetchedAt time.Time // When the snapshot was taken
}
