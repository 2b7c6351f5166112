// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem represents a symbol in the API response.
// HasQuote tells the dashboard whether to render a live price card
// for the symbol or only offer it in the chart selector.
type SymbolItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	HasQuote bool   `json:"has_quote"`
}
