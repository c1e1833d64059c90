package entity

// Ticker is a 24-hour rolling price/volume snapshot for one trading pair.
// Price and volume fields stay as upstream's decimal strings to avoid float
// rounding on passthrough.
type Ticker struct {
	Symbol             string
	PriceChange        string
	PriceChangePercent string
	WeightedAvgPrice   string
	LastPrice          string
	OpenPrice          string
	HighPrice          string
	LowPrice           string
	Volume             string
	QuoteVolume        string
	OpenTime           int64
	CloseTime          int64
}

// Price is the current price of one trading pair.
type Price struct {
	Symbol string
	Price  string
}
