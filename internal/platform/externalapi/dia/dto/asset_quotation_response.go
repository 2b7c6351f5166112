// Package dto defines data transfer objects for the DIA API responses.
package dto

// AssetQuotationResponse represents the JSON response from the DIA
// /v1/assetQuotation/{blockchain}/{address} endpoint. Price is required;
// the 24h change is optional and some assets omit it entirely, so both are
// pointers to distinguish absent fields from zero values.
type AssetQuotationResponse struct {
	Symbol     string   `json:"Symbol"`
	Name       string   `json:"Name"`
	Blockchain string   `json:"Blockchain"`
	Address    string   `json:"Address"`
	Price      *float64 `json:"Price"`
	Change24h  *float64 `json:"Change24h,omitempty"`
	Time       string   `json:"Time"`
}
