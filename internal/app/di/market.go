// Package di provides dependency injection factories for creating application components.
package di

import (
	dailyusecase "stock_market/internal/feature/dailyprices/usecase"
	searchusecase "stock_market/internal/feature/symbolsearch/usecase"
	"stock_market/internal/platform/externalapi/alphavantage"
	"stock_market/internal/platform/externalapi/rapidapi"
	infrahttp "stock_market/internal/platform/http"
)

// Usecases bundles the two user-facing operations.
type Usecases struct {
	Search *searchusecase.SymbolSearchUsecase
	Daily  *dailyusecase.DailyPricesUsecase
}

// NewMarket creates a fully configured Alpha Vantage repository backed by a RapidAPI client.
func NewMarket(cfg rapidapi.Config) *alphavantage.Repository {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alphavantage.NewRepository(rapidapi.NewClient(cfg, httpClient))
}

// NewUsecases wires both usecases to a single market repository.
func NewUsecases(cfg rapidapi.Config) Usecases {
	market := NewMarket(cfg)
	return Usecases{
		Search: searchusecase.NewSymbolSearchUsecase(market),
		Daily:  dailyusecase.NewDailyPricesUsecase(market),
	}
}
