// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultTickerSymbols はティッカーエンドポイントが返す許可銘柄の既定値です。
var defaultTickerSymbols = []string{
	"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT", "XRPUSDT",
	"ADAUSDT", "DOGEUSDT", "DOTUSDT", "MATICUSDT", "LTCUSDT",
	"AVAXUSDT", "LINKUSDT", "ATOMUSDT", "UNIUSDT",
}

// defaultExchangeInfoSymbols はexchangeInfoエンドポイントの許可銘柄の既定値です。
var defaultExchangeInfoSymbols = []string{
	"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT",
}

// defaultUpstreamHosts は上流候補ホストの既定値です。先頭から順に試されます。
// 先頭ホストが地域的に遮断されている環境のために代替ホストを続けます。
var defaultUpstreamHosts = []string{
	"https://api.binance.com",
	"https://api-gcp.binance.com",
	"https://data-api.binance.vision",
}

// defaultAllowedOrigins はCORSで許可するオリジンの既定値です。
// ワイルドカードはサブドメイン1段のみ展開されます。
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://*.onrender.com",
}

// Config はプロセス全体の設定です。起動時に一度だけ読み込まれ、
// 以後は変更されません。
type Config struct {
	Port                string        // HTTP listen port
	UpstreamHosts       []string      // Ordered upstream base URLs
	UpstreamTimeout     time.Duration // Per-host request timeout
	AllowedOrigins      []string      // CORS origin allow-list
	TickerSymbols       []string      // Ticker endpoint symbol allow-list
	ExchangeInfoSymbols []string      // exchangeInfo endpoint symbol allow-list
	LogLevel            string        // "debug", "info", "warn", "error"
}

// Load は環境変数から設定を読み込みます。カレントディレクトリに .env が
// あれば先に読み込みます（無くてもエラーにしません）。
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		UpstreamHosts:       getEnvList("UPSTREAM_HOSTS", defaultUpstreamHosts),
		UpstreamTimeout:     getEnvSeconds("UPSTREAM_TIMEOUT", 10*time.Second),
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS", defaultAllowedOrigins),
		TickerSymbols:       getEnvList("TICKER_SYMBOLS", defaultTickerSymbols),
		ExchangeInfoSymbols: getEnvList("EXCHANGE_INFO_SYMBOLS", defaultExchangeInfoSymbols),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvList はカンマ区切りの環境変数をスライスに分解します。
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v + "s")
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
