// Package usecase はマーケットデータ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"market_proxy/internal/feature/market/domain/entity"
)

const (
	// DefaultSymbol はkline照会のデフォルト銘柄です。
	DefaultSymbol = "BTCUSDT"
	// DefaultInterval はkline照会のデフォルト時間間隔です。
	DefaultInterval = "1h"
	// DefaultLimit はデフォルトのローソク足返却件数です。
	DefaultLimit = 60
)

// MarketClient は上流取引所APIの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketClient interface {
	Ticker24h(ctx context.Context) ([]entity.Ticker, error)
	Price(ctx context.Context, symbol string) (entity.Price, error)
	Prices(ctx context.Context) ([]entity.Price, error)
	Klines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error)
	ExchangeInfo(ctx context.Context) ([]entity.SymbolInfo, error)
}

// MarketUsecase はマーケットデータ操作のユースケースを定義します。
// 許可銘柄リストは構築時に受け取り、以後変更されません。
type MarketUsecase struct {
	client            MarketClient
	tickerAllow       map[string]struct{}
	exchangeInfoAllow map[string]struct{}
}

// NewMarketUsecase はMarketUsecaseの新しいインスタンスを生成します。
func NewMarketUsecase(client MarketClient, tickerSymbols, exchangeInfoSymbols []string) *MarketUsecase {
	return &MarketUsecase{
		client:            client,
		tickerAllow:       toSet(tickerSymbols),
		exchangeInfoAllow: toSet(exchangeInfoSymbols),
	}
}

// GetTicker は24時間ティッカースナップショットを取得し、許可銘柄のみを
// 上流の並び順のまま返します。
func (u *MarketUsecase) GetTicker(ctx context.Context) ([]entity.Ticker, error) {
	tickers, err := u.client.Ticker24h(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Ticker, 0, len(u.tickerAllow))
	for _, t := range tickers {
		if _, ok := u.tickerAllow[t.Symbol]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetPrice は単一銘柄の現在価格を取得します。銘柄は大文字に正規化するのみで、
// それ以上の検証は行いません。不正値は上流にそのまま渡ります。
func (u *MarketUsecase) GetPrice(ctx context.Context, symbol string) (entity.Price, error) {
	return u.client.Price(ctx, strings.ToUpper(symbol))
}

// GetPrices は全銘柄の現在価格を取得します。
func (u *MarketUsecase) GetPrices(ctx context.Context) ([]entity.Price, error) {
	return u.client.Prices(ctx)
}

// GetKlines は指定された銘柄と時間間隔のローソク足履歴を取得します。
// 未指定のパラメータにはデフォルト値を適用します。
func (u *MarketUsecase) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	if interval == "" {
		interval = DefaultInterval
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return u.client.Klines(ctx, strings.ToUpper(symbol), interval, limit)
}

// GetExchangeInfo は取引所メタデータを取得し、許可銘柄のみを返します。
func (u *MarketUsecase) GetExchangeInfo(ctx context.Context) ([]entity.SymbolInfo, error) {
	infos, err := u.client.ExchangeInfo(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.SymbolInfo, 0, len(u.exchangeInfoAllow))
	for _, s := range infos {
		if _, ok := u.exchangeInfoAllow[s.Symbol]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func toSet(symbols []string) map[string]struct{} {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[strings.ToUpper(s)] = struct{}{}
	}
	return set
}
