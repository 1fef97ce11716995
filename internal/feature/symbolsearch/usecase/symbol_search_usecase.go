// Package usecase implements the business logic for symbol search.
package usecase

import (
	"context"
	"strings"

	"stock_market/internal/feature/symbolsearch/domain/entity"
	"stock_market/internal/shared/apierr"
)

// SymbolSearchRepository abstracts the external API that resolves a company name into ticker symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolSearchRepository interface {
	SearchSymbols(ctx context.Context, keywords string) (entity.MatchTable, error)
}

// SymbolSearchUsecase provides business logic for symbol search.
type SymbolSearchUsecase struct {
	repo SymbolSearchRepository
}

// NewSymbolSearchUsecase creates a new SymbolSearchUsecase with the given repository.
func NewSymbolSearchUsecase(r SymbolSearchRepository) *SymbolSearchUsecase {
	return &SymbolSearchUsecase{repo: r}
}

// Search returns the provider's best matches for a company name.
// Any non-blank text is forwarded as-is; blank input returns apierr.ErrEmptyInput.
func (u *SymbolSearchUsecase) Search(ctx context.Context, company string) (entity.MatchTable, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return entity.MatchTable{}, apierr.ErrEmptyInput
	}
	return u.repo.SearchSymbols(ctx, company)
}
