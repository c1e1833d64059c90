// Package api defines the response DTOs shared by all HTTP handlers.
package api

import "time"

// ErrorResponse は全エンドポイント共通のエラーエンベロープです。
// Error には発生したエラーのメッセージがそのまま入ります。
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path,omitempty"`
}

// NewErrorResponse は現在時刻のタイムスタンプ付きエラーエンベロープを生成します。
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Timestamp: Timestamp()}
}

// Timestamp はエンベロープ用のISO-8601形式の現在時刻（UTC）を返します。
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// TickerResponse は24時間ティッカーのレスポンスDTOです。
// フィールド名は上流APIのものをそのまま踏襲します。
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

// PriceResponse は現在価格のレスポンスDTOです。
type PriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// CandleResponse はローソク足データのレスポンスDTOです。
type CandleResponse struct {
	OpenTime  int64   `json:"openTime"`  // 開始時刻（Unixミリ秒）
	Open      float64 `json:"open"`      // 始値
	High      float64 `json:"high"`      // 高値
	Low       float64 `json:"low"`       // 安値
	Close     float64 `json:"close"`     // 終値
	Volume    float64 `json:"volume"`    // 出来高
	CloseTime int64   `json:"closeTime"` // 終了時刻（Unixミリ秒）
	Trades    int32   `json:"trades"`    // 約定数
}

// SymbolInfoResponse は取引所メタデータのレスポンスDTOです。
type SymbolInfoResponse struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}
