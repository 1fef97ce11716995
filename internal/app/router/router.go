// Package router builds the gin engine for the HTTP server.
package router

import (
	dailyhandler "stock_market/internal/feature/dailyprices/transport/handler"
	searchhandler "stock_market/internal/feature/symbolsearch/transport/handler"
	platformhandler "stock_market/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter は2つのエンドポイント（銘柄検索・日足）とヘルスチェックを登録したルーターを返します。
// upstreamHost はヘルスチェックのレスポンスにのみ使います。
func NewRouter(upstreamHost string, search *searchhandler.SymbolSearchHandler, daily *dailyhandler.DailyPricesHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	health := platformhandler.NewHealth(upstreamHost)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	// Symbol Search
	r.GET("/symbols/search", search.Search)
	// Daily Prices
	r.GET("/daily/:symbol", daily.GetDailyPrices)

	return r
}
