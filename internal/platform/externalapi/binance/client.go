package binance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"market_proxy/internal/feature/market/domain/entity"
	"market_proxy/internal/feature/market/usecase"
	"market_proxy/internal/platform/externalapi/binance/dto"
)

// Client はBinance公開APIからマーケットデータを取得するMarketClient実装です。
// 候補ホストを順に試すシーケンシャルフェイルオーバーを持ちます。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMarketClientを実装していることをコンパイル時に検証します。
var _ usecase.MarketClient = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg.withDefaults(), client: client}
}

// get は候補ホストに対して順にGETを発行し、最初に成功したレスポンスボディを返します。
//
// フェイルオーバーの対象はタイムアウトと通信路エラーのみです。上流が応答した
// 失敗（200以外・不正JSON）は即座に返します。ホストごとの試行は1回です。
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if !strings.HasPrefix(path, APIPrefix+"/") {
		return nil, fmt.Errorf("binance: path %q must start with %s/", path, APIPrefix)
	}
	if len(c.cfg.BaseURLs) == 0 {
		return nil, fmt.Errorf("binance: no upstream hosts configured")
	}

	var last error
	for _, base := range c.cfg.BaseURLs {
		body, err := c.getOnce(ctx, base, path)
		if err == nil {
			return body, nil
		}

		var ue *Error
		if errors.As(err, &ue) && ue.Retryable() {
			slog.Warn("upstream host failed, trying next",
				"host", base, "path", path, "kind", string(ue.Kind), "error", ue.Message)
			last = err
			continue
		}
		return nil, err
	}
	return nil, last
}

// getOnce は単一ホストへの1回のGETです。ホスト単位のタイムアウトを適用します。
func (c *Client) getOnce(ctx context.Context, base, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	// Goデフォルトのユーザーエージェントはボットフィルタに弾かれるため上書き
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, classify(err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, &Error{
			Kind:    KindUpstreamStatus,
			Message: fmt.Sprintf("HTTP %d: %s", res.StatusCode, body),
		}
	}

	if !json.Valid(body) {
		return nil, &Error{Kind: KindInvalidBody, Message: "Invalid JSON response"}
	}

	return body, nil
}

// classify は通信エラーをタイムアウトとそれ以外の通信路エラーに分類します。
func classify(err error) *Error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &Error{Kind: KindTimeout, Message: "Request timeout"}
	}
	return &Error{Kind: KindTransport, Message: err.Error()}
}

// Ticker24h は全銘柄の24時間ティッカースナップショットを取得します。
func (c *Client) Ticker24h(ctx context.Context) ([]entity.Ticker, error) {
	body, err := c.get(ctx, APIPrefix+"/ticker/24hr")
	if err != nil {
		return nil, err
	}

	var rows []dto.TickerResponse
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode ticker: %w", err)
	}

	out := make([]entity.Ticker, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.Ticker{
			Symbol:             r.Symbol,
			PriceChange:        r.PriceChange,
			PriceChangePercent: r.PriceChangePercent,
			WeightedAvgPrice:   r.WeightedAvgPrice,
			LastPrice:          r.LastPrice,
			OpenPrice:          r.OpenPrice,
			HighPrice:          r.HighPrice,
			LowPrice:           r.LowPrice,
			Volume:             r.Volume,
			QuoteVolume:        r.QuoteVolume,
			OpenTime:           r.OpenTime,
			CloseTime:          r.CloseTime,
		})
	}
	return out, nil
}

// Price は単一銘柄の現在価格を取得します。
func (c *Client) Price(ctx context.Context, symbol string) (entity.Price, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	body, err := c.get(ctx, APIPrefix+"/ticker/price?"+q.Encode())
	if err != nil {
		return entity.Price{}, err
	}

	var r dto.PriceResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return entity.Price{}, fmt.Errorf("decode price: %w", err)
	}
	return entity.Price{Symbol: r.Symbol, Price: r.Price}, nil
}

// Prices は全銘柄の現在価格を取得します。
func (c *Client) Prices(ctx context.Context) ([]entity.Price, error) {
	body, err := c.get(ctx, APIPrefix+"/ticker/price")
	if err != nil {
		return nil, err
	}

	var rows []dto.PriceResponse
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}

	out := make([]entity.Price, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.Price{Symbol: r.Symbol, Price: r.Price})
	}
	return out, nil
}

// Klines は指定された銘柄と時間間隔のローソク足履歴を取得します。
func (c *Client) Klines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", interval)
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, APIPrefix+"/klines?"+q.Encode())
	if err != nil {
		return nil, err
	}

	rows, err := decodeKlineRows(body)
	if err != nil {
		return nil, err
	}

	candles := make([]entity.Candle, 0, len(rows))
	for i, row := range rows {
		candle, err := parseKlineRow(row)
		if err != nil {
			return nil, fmt.Errorf("kline row %d: %w", i, err)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

// ExchangeInfo は取引所の銘柄メタデータ一覧を取得します。
func (c *Client) ExchangeInfo(ctx context.Context) ([]entity.SymbolInfo, error) {
	body, err := c.get(ctx, APIPrefix+"/exchangeInfo")
	if err != nil {
		return nil, err
	}

	var r dto.ExchangeInfoResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decode exchangeInfo: %w", err)
	}

	out := make([]entity.SymbolInfo, 0, len(r.Symbols))
	for _, s := range r.Symbols {
		out = append(out, entity.SymbolInfo{
			Symbol:     s.Symbol,
			Status:     s.Status,
			BaseAsset:  s.BaseAsset,
			QuoteAsset: s.QuoteAsset,
		})
	}
	return out, nil
}
