// Package usecase は価格カード向けリアルタイム気配取得のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrUnsupportedSymbol is returned when the symbol is unknown or has no quote source mapping.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrUpstream is returned when the quote source call fails at the transport or HTTP level.
	ErrUpstream = errors.New("upstream request failed")

	// ErrInvalidResponse is returned when the quote payload cannot be parsed or lacks a price.
	ErrInvalidResponse = errors.New("invalid upstream response")
)
