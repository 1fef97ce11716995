// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse は /healthz のレスポンスボディです。
type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
}

// NewHealth は /healthz 用のハンドラーを返します。
// 外部APIへの疎通は確認せず、起動時に設定された接続先ホスト名だけを返します。
// APIキーは含めません。
func NewHealth(upstreamHost string) gin.HandlerFunc {
	body := HealthResponse{Status: "ok", Upstream: upstreamHost}
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		if c.Request.Method == http.MethodHead {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
