// Package dto defines the upstream response shapes of the Binance API.
package dto

// TickerResponse は /api/v3/ticker/24hr の1要素です。
// 価格・出来高は上流仕様どおり10進文字列です。
type TickerResponse struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	WeightedAvgPrice   string `json:"weightedAvgPrice"`
	LastPrice          string `json:"lastPrice"`
	OpenPrice          string `json:"openPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	QuoteVolume        string `json:"quoteVolume"`
	OpenTime           int64  `json:"openTime"`
	CloseTime          int64  `json:"closeTime"`
}

// PriceResponse は /api/v3/ticker/price の1要素です。
type PriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// ExchangeInfoResponse は /api/v3/exchangeInfo のレスポンスです。
// symbols 以外のフィールドは利用しないため定義しません。
type ExchangeInfoResponse struct {
	Timezone   string               `json:"timezone"`
	ServerTime int64                `json:"serverTime"`
	Symbols    []SymbolInfoResponse `json:"symbols"`
}

// SymbolInfoResponse は exchangeInfo の銘柄メタデータ1件です。
type SymbolInfoResponse struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}
