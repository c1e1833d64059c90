// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"market_proxy/internal/api"
	"market_proxy/internal/feature/market/domain/entity"
	"market_proxy/internal/feature/market/usecase"
)

// sourceName はエンベロープのsourceフィールドに入る上流の識別子です。
const sourceName = "binance"

// MarketUsecase はマーケットデータ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	GetTicker(ctx context.Context) ([]entity.Ticker, error)
	GetPrice(ctx context.Context, symbol string) (entity.Price, error)
	GetPrices(ctx context.Context) ([]entity.Price, error)
	GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error)
	GetExchangeInfo(ctx context.Context) ([]entity.SymbolInfo, error)
}

// MarketHandler はマーケットデータのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetTickerHandler は許可銘柄の24時間ティッカースナップショットをJSONで返します。
//
// エンドポイント例:
// GET /api/market/ticker
func (h *MarketHandler) GetTickerHandler(c *gin.Context) {
	tickers, err := h.uc.GetTicker(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(err.Error()))
		return
	}

	// データをフォーマット
	out := make([]api.TickerResponse, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, api.TickerResponse{
			Symbol:             t.Symbol,
			PriceChange:        t.PriceChange,
			PriceChangePercent: t.PriceChangePercent,
			WeightedAvgPrice:   t.WeightedAvgPrice,
			LastPrice:          t.LastPrice,
			OpenPrice:          t.OpenPrice,
			HighPrice:          t.HighPrice,
			LowPrice:           t.LowPrice,
			Volume:             t.Volume,
			QuoteVolume:        t.QuoteVolume,
			OpenTime:           t.OpenTime,
			CloseTime:          t.CloseTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": api.Timestamp(),
		"source":    sourceName,
		"count":     len(out),
		"data":      out,
	})
}

// GetPriceHandler は現在価格をJSONで返します。パスパラメータで銘柄を指定した
// 場合は単一銘柄、省略した場合は全銘柄を返します。
//
// エンドポイント例:
// GET /api/market/price/BTCUSDT
// GET /api/market/price
func (h *MarketHandler) GetPriceHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	if symbol == "" {
		prices, err := h.uc.GetPrices(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.NewErrorResponse(err.Error()))
			return
		}

		out := make([]api.PriceResponse, 0, len(prices))
		for _, p := range prices {
			out = append(out, api.PriceResponse{Symbol: p.Symbol, Price: p.Price})
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"timestamp": api.Timestamp(),
			"source":    sourceName,
			"count":     len(out),
			"data":      out,
		})
		return
	}

	price, err := h.uc.GetPrice(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": api.Timestamp(),
		"source":    sourceName,
		"data":      api.PriceResponse{Symbol: price.Symbol, Price: price.Price},
	})
}

// GetKlinesHandler は銘柄と時間間隔を受け取り、ローソク足履歴をJSONで返します。
//
// エンドポイント例:
// GET /api/market/klines?symbol=BTCUSDT&interval=1h&limit=60
func (h *MarketHandler) GetKlinesHandler(c *gin.Context) {
	// 未指定の場合はデフォルト値を使用
	symbol := strings.ToUpper(c.DefaultQuery("symbol", usecase.DefaultSymbol))
	interval := c.DefaultQuery("interval", usecase.DefaultInterval)
	// 文字列を整数に変換。変換失敗時の0はusecase側でデフォルト値に補正される
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultLimit)))

	candles, err := h.uc.GetKlines(c.Request.Context(), symbol, interval, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(err.Error()))
		return
	}

	out := make([]api.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.CandleResponse{
			OpenTime:  x.OpenTime,
			Open:      x.Open,
			High:      x.High,
			Low:       x.Low,
			Close:     x.Close,
			Volume:    x.Volume,
			CloseTime: x.CloseTime,
			Trades:    x.Trades,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": api.Timestamp(),
		"symbol":    symbol,
		"interval":  interval,
		"count":     len(out),
		"data":      out,
	})
}

// GetExchangeInfoHandler は許可銘柄の取引所メタデータをJSONで返します。
//
// エンドポイント例:
// GET /api/market/exchangeInfo
func (h *MarketHandler) GetExchangeInfoHandler(c *gin.Context) {
	infos, err := h.uc.GetExchangeInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(err.Error()))
		return
	}

	out := make([]api.SymbolInfoResponse, 0, len(infos))
	for _, s := range infos {
		out = append(out, api.SymbolInfoResponse{
			Symbol:     s.Symbol,
			Status:     s.Status,
			BaseAsset:  s.BaseAsset,
			QuoteAsset: s.QuoteAsset,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": api.Timestamp(),
		"source":    sourceName,
		"count":     len(out),
		"data":      out,
	})
}
