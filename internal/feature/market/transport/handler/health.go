package handler

import (
	"github.com/gin-gonic/gin"

	"market_proxy/internal/api"
)

// Health は上流を呼ばずにサービス情報を返す死活確認ハンドラーです。
// `/` と `/health` の両方に割り当てられます。
func Health(c *gin.Context) {
	// キャッシュされないように明示
	c.Header("Cache-Control", "no-store")

	// GET/HEAD/OPTIONS すべて 200 or 204 で返す
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{
			"success":   true,
			"timestamp": api.Timestamp(),
			"data": gin.H{
				"service": "market-proxy",
				"status":  "ok",
				"endpoints": []string{
					"/api/market/ticker",
					"/api/market/price/:symbol?",
					"/api/market/klines",
					"/api/market/exchangeInfo",
				},
			},
		})
	}
}
