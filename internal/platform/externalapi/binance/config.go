// Package binance provides a client for the Binance public market-data API.
package binance

import "time"

const (
	// APIPrefix is the version prefix every upstream path must start with.
	APIPrefix = "/api/v3"

	// DefaultTimeout is the per-host wait limit for one upstream call.
	DefaultTimeout = 10 * time.Second

	// defaultUserAgent masquerades as a browser; Binance's edge rejects the
	// Go default user agent on some hosts.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds configuration for the Binance API client.
type Config struct {
	BaseURLs  []string      // Candidate upstream hosts, tried in order (e.g. "https://api.binance.com")
	Timeout   time.Duration // Per-host request timeout
	UserAgent string        // User-Agent header sent upstream
}

// withDefaults fills zero-valued fields so a partially built Config is usable.
func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}
