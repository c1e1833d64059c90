package binance

import (
	"bytes"
	"encoding/json"
	"fmt"

	"market_proxy/internal/feature/market/domain/entity"
)

// 上流のkline配列の位置割り当て。
// [0]=開始時刻 [1]=始値 [2]=高値 [3]=安値 [4]=終値 [5]=出来高
// [6]=終了時刻 [7]=クオート出来高 [8]=約定数 ...
const klineRowMinLen = 9

// decodeKlineRows は配列の配列であるklineレスポンスをデコードします。
// 整数タイムスタンプの精度を保つため json.Number を使います。
func decodeKlineRows(body []byte) ([][]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var rows [][]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode klines: %w", err)
	}
	return rows, nil
}

// parseKlineRow は固定長のkline配列1行をドメインエンティティに変換します。
func parseKlineRow(row []any) (entity.Candle, error) {
	if len(row) < klineRowMinLen {
		return entity.Candle{}, fmt.Errorf("unexpected row length %d", len(row))
	}

	// 開始時刻をパース
	openTime, err := asInt64(row[0])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse open time: %w", err)
	}
	// 始値をパース
	open, err := asFloat64(row[1])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse open: %w", err)
	}
	// 高値をパース
	high, err := asFloat64(row[2])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse high: %w", err)
	}
	// 安値をパース
	low, err := asFloat64(row[3])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse low: %w", err)
	}
	// 終値をパース
	closePrice, err := asFloat64(row[4])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse close: %w", err)
	}
	// 出来高をパース
	volume, err := asFloat64(row[5])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse volume: %w", err)
	}
	// 終了時刻をパース
	closeTime, err := asInt64(row[6])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse close time: %w", err)
	}
	// 約定数をパース
	trades, err := asInt64(row[8])
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse trade count: %w", err)
	}

	return entity.Candle{
		OpenTime:  openTime,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
		CloseTime: closeTime,
		Trades:    int32(trades),
	}, nil
}

// asInt64 はJSON数値フィールドをint64として取り出します。
func asInt64(v any) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	return n.Int64()
}

// asFloat64 はJSON文字列フィールドを浮動小数点としてパースします。
// 上流は価格・出来高を10進文字列で返します。
func asFloat64(v any) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("expected string, got %T", v)
	}
	f, err := json.Number(s).Float64()
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return f, nil
}
