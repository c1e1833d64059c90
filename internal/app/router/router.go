// Package router はginエンジンの構築とルート定義を提供します。
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"market_proxy/internal/api"
	"market_proxy/internal/feature/market/transport/handler"
)

// NewRouter はCORSポリシーと全ルートを設定したginエンジンを生成します。
//
// allowedOrigins は完全一致のオリジンに加えて "https://*.example.com" 形式の
// ワイルドカード1件を含められます。Originヘッダの無いリクエストは素通しです。
// 不一致のオリジンはハンドラーに到達する前に拒否されます。
func NewRouter(market *handler.MarketHandler, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	// CORS: 許可リストは起動時設定から渡される
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowWildcard: true,
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
	}))

	// 導通確認用。上流は呼ばない
	r.GET("/", handler.Health)
	r.GET("/health", handler.Health)

	m := r.Group("/api/market")
	{
		m.GET("/ticker", market.GetTickerHandler)
		m.GET("/price", market.GetPriceHandler)
		m.GET("/price/:symbol", market.GetPriceHandler)
		m.GET("/klines", market.GetKlinesHandler)
		m.GET("/exchangeInfo", market.GetExchangeInfoHandler)
	}

	// 未定義ルートは404エンベロープで要求パスをそのまま返す
	r.NoRoute(func(c *gin.Context) {
		res := api.NewErrorResponse("Route not found")
		res.Path = c.Request.URL.Path
		c.JSON(http.StatusNotFound, res)
	})

	return r
}
