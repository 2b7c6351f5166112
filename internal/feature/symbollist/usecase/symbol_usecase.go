// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"errors"

	"crypto_dashboard/internal/feature/symbollist/domain/entity"
)

// ErrSymbolNotFound is returned when no active symbol matches the given code.
var ErrSymbolNotFound = errors.New("symbol not found")

// SymbolRepository abstracts the catalog of supported symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	FindByCode(ctx context.Context, code string) (entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the catalog in display order.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}
