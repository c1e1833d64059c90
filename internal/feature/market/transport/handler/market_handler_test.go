package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"market_proxy/internal/feature/market/domain/entity"
)

// mockMarketUsecase は MarketUsecase インターフェースのモック実装です。
type mockMarketUsecase struct {
	GetTickerFunc       func(ctx context.Context) ([]entity.Ticker, error)
	GetPriceFunc        func(ctx context.Context, symbol string) (entity.Price, error)
	GetPricesFunc       func(ctx context.Context) ([]entity.Price, error)
	GetKlinesFunc       func(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error)
	GetExchangeInfoFunc func(ctx context.Context) ([]entity.SymbolInfo, error)
}

func (m *mockMarketUsecase) GetTicker(ctx context.Context) ([]entity.Ticker, error) {
	return m.GetTickerFunc(ctx)
}

func (m *mockMarketUsecase) GetPrice(ctx context.Context, symbol string) (entity.Price, error) {
	return m.GetPriceFunc(ctx, symbol)
}

func (m *mockMarketUsecase) GetPrices(ctx context.Context) ([]entity.Price, error) {
	return m.GetPricesFunc(ctx)
}

func (m *mockMarketUsecase) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
	return m.GetKlinesFunc(ctx, symbol, interval, limit)
}

func (m *mockMarketUsecase) GetExchangeInfo(ctx context.Context) ([]entity.SymbolInfo, error) {
	return m.GetExchangeInfoFunc(ctx)
}

func newTestRouter(uc MarketUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMarketHandler(uc)

	r := gin.New()
	r.GET("/api/market/ticker", h.GetTickerHandler)
	r.GET("/api/market/price", h.GetPriceHandler)
	r.GET("/api/market/price/:symbol", h.GetPriceHandler)
	r.GET("/api/market/klines", h.GetKlinesHandler)
	r.GET("/api/market/exchangeInfo", h.GetExchangeInfoHandler)
	return r
}

func doRequest(r *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestMarketHandler_GetTickerHandler(t *testing.T) {
	mockUC := &mockMarketUsecase{
		GetTickerFunc: func(ctx context.Context) ([]entity.Ticker, error) {
			return []entity.Ticker{
				{Symbol: "BTCUSDT", PriceChangePercent: "2.54", LastPrice: "97000.10", Volume: "12345.6"},
			}, nil
		},
	}

	w, body := doRequest(newTestRouter(mockUC), "/api/market/ticker")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "binance", body["source"])
	assert.EqualValues(t, 1, body["count"])
	assert.NotEmpty(t, body["timestamp"])

	data := body["data"].([]any)
	first := data[0].(map[string]any)
	assert.Equal(t, "BTCUSDT", first["symbol"])
	assert.Equal(t, "2.54", first["priceChangePercent"])
	assert.Equal(t, "97000.10", first["lastPrice"])
}

func TestMarketHandler_GetTickerHandler_UpstreamError(t *testing.T) {
	mockUC := &mockMarketUsecase{
		GetTickerFunc: func(ctx context.Context) ([]entity.Ticker, error) {
			return nil, assert.AnError
		},
	}

	w, body := doRequest(newTestRouter(mockUC), "/api/market/ticker")

	// 上流エラーは種類を問わず500で、メッセージはそのまま返す
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, assert.AnError.Error(), body["error"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMarketHandler_GetPriceHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockPrice      func(ctx context.Context, symbol string) (entity.Price, error)
		mockPrices     func(ctx context.Context) ([]entity.Price, error)
		expectedStatus int
		check          func(t *testing.T, body map[string]any)
	}{
		{
			name: "成功: 単一銘柄",
			url:  "/api/market/price/BTCUSDT",
			mockPrice: func(ctx context.Context, symbol string) (entity.Price, error) {
				assert.Equal(t, "BTCUSDT", symbol)
				return entity.Price{Symbol: "BTCUSDT", Price: "97000.10000000"}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				data := body["data"].(map[string]any)
				assert.Equal(t, "BTCUSDT", data["symbol"])
				assert.Equal(t, "97000.10000000", data["price"])
			},
		},
		{
			name: "成功: 銘柄省略時は全銘柄",
			url:  "/api/market/price",
			mockPrices: func(ctx context.Context) ([]entity.Price, error) {
				return []entity.Price{
					{Symbol: "BTCUSDT", Price: "97000.1"},
					{Symbol: "ETHUSDT", Price: "3200.0"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.EqualValues(t, 2, body["count"])
				data := body["data"].([]any)
				assert.Len(t, data, 2)
			},
		},
		{
			name: "失敗: 上流エラーは500",
			url:  "/api/market/price/NOPEUSDT",
			mockPrice: func(ctx context.Context, symbol string) (entity.Price, error) {
				return entity.Price{}, assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, assert.AnError.Error(), body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockMarketUsecase{
				GetPriceFunc:  tt.mockPrice,
				GetPricesFunc: tt.mockPrices,
			}

			w, body := doRequest(newTestRouter(mockUC), tt.url)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, body)
		})
	}
}

func TestMarketHandler_GetKlinesHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockGetKlines  func(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error)
		expectedStatus int
		check          func(t *testing.T, body map[string]any)
	}{
		{
			name: "成功: 全てのパラメータを指定",
			url:  "/api/market/klines?symbol=ethusdt&interval=4h&limit=10",
			mockGetKlines: func(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
				assert.Equal(t, "ETHUSDT", symbol)
				assert.Equal(t, "4h", interval)
				assert.Equal(t, 10, limit)
				return []entity.Candle{
					{OpenTime: 1700000000000, Open: 100, High: 110, Low: 90, Close: 105,
						Volume: 50, CloseTime: 1700003599999, Trades: 42},
				}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "ETHUSDT", body["symbol"])
				assert.Equal(t, "4h", body["interval"])
				assert.EqualValues(t, 1, body["count"])

				data := body["data"].([]any)
				first := data[0].(map[string]any)
				assert.EqualValues(t, 1700000000000, first["openTime"])
				assert.EqualValues(t, 105, first["close"])
				assert.EqualValues(t, 42, first["trades"])
			},
		},
		{
			name: "成功: パラメータがデフォルト値",
			url:  "/api/market/klines",
			mockGetKlines: func(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
				assert.Equal(t, "BTCUSDT", symbol)
				assert.Equal(t, "1h", interval)
				assert.Equal(t, 60, limit)
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "BTCUSDT", body["symbol"])
				assert.Equal(t, "1h", body["interval"])
			},
		},
		{
			name: "準正常: limitが不正な文字列の場合はusecase側でデフォルト値が使われる",
			url:  "/api/market/klines?limit=invalid",
			mockGetKlines: func(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
				// ハンドラは strconv.Atoi("invalid") の結果である 0 を渡すのが責務
				assert.Equal(t, 0, limit)
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			check:          func(t *testing.T, body map[string]any) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockMarketUsecase{GetKlinesFunc: tt.mockGetKlines}

			w, body := doRequest(newTestRouter(mockUC), tt.url)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, body)
		})
	}
}

func TestMarketHandler_GetExchangeInfoHandler(t *testing.T) {
	mockUC := &mockMarketUsecase{
		GetExchangeInfoFunc: func(ctx context.Context) ([]entity.SymbolInfo, error) {
			return []entity.SymbolInfo{
				{Symbol: "BTCUSDT", Status: "TRADING", BaseAsset: "BTC", QuoteAsset: "USDT"},
			}, nil
		},
	}

	w, body := doRequest(newTestRouter(mockUC), "/api/market/exchangeInfo")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["count"])

	data := body["data"].([]any)
	first := data[0].(map[string]any)
	assert.Equal(t, "BTC", first["baseAsset"])
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", Health)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
}
