// Package entity defines the domain models for the market feature.
package entity

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for one trading pair over one fixed time interval.
type Candle struct {
	OpenTime  int64   // Interval start, Unix milliseconds
	Open      float64 // Opening price
	High      float64 // Highest price during this interval
	Low       float64 // Lowest price during this interval
	Close     float64 // Closing price
	Volume    float64 // Base asset volume
	CloseTime int64   // Interval end, Unix milliseconds
	Trades    int32   // Number of trades during this interval
}
