package entity

// SymbolInfo is the exchange metadata for one trading pair.
type SymbolInfo struct {
	Symbol     string
	Status     string
	BaseAsset  string
	QuoteAsset string
}
