// Package di provides dependency injection factories for creating application components.
package di

import (
	"market_proxy/internal/config"
	"market_proxy/internal/feature/market/transport/handler"
	"market_proxy/internal/feature/market/usecase"
	"market_proxy/internal/platform/externalapi/binance"
	infrahttp "market_proxy/internal/platform/http"
)

// NewMarketHandler creates a fully configured market handler:
// upstream client -> usecase (with immutable allow-lists) -> handler.
func NewMarketHandler(cfg config.Config) *handler.MarketHandler {
	client := binance.NewClient(binance.Config{
		BaseURLs: cfg.UpstreamHosts,
		Timeout:  cfg.UpstreamTimeout,
	}, infrahttp.NewHTTPClient())

	uc := usecase.NewMarketUsecase(client, cfg.TickerSymbols, cfg.ExchangeInfoSymbols)
	return handler.NewMarketHandler(uc)
}
