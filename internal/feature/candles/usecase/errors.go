// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrUnsupportedSymbol is returned when the requested symbol is not in the catalog.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrInvalidRequest is returned when the interval or period is outside the supported window.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstream is returned when the upstream call fails at the transport or HTTP level.
	ErrUpstream = errors.New("upstream request failed")

	// ErrInvalidResponse is returned when the upstream payload cannot be parsed.
	ErrInvalidResponse = errors.New("invalid upstream response")

	// ErrNoData is returned when a valid response yields no usable bars after cleaning.
	ErrNoData = errors.New("no data available")
)
