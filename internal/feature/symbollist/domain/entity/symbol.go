// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol represents a tradable crypto asset in the dashboard catalog.
// It carries the source-specific identifiers each upstream API requires:
// the history source is addressed by Ticker, the real-time quote source by
// a Blockchain/Address pair. Symbols without a quote mapping still appear
// on the chart but have no live price card.
type Symbol struct {
	Code       string // Canonical code used by the dashboard API (e.g. "BTC-USD")
	Name       string // Human-readable asset name (e.g. "Bitcoin")
	Ticker     string // Ticker for the historical data source
	Blockchain string // Blockchain identifier for the quote source, empty if unsupported
	Address    string // Asset address on the blockchain, empty if unsupported
	IsActive   bool   // Whether the symbol is shown in the dashboard
	SortKey    int    // Display ordering
}

// HasQuote reports whether the symbol can be resolved against the
// real-time quote source.
func (s Symbol) HasQuote() bool {
	return s.Blockchain != "" && s.Address != ""
}
