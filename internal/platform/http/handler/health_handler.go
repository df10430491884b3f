// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arcade-K/eduscan-server/internal/api"
)

// Health はサービスヘルスチェック用の /health エンドポイントを処理します。
// プロセス起動からの経過秒数を返し、キャッシュを防止します。
func Health(start time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
		switch c.Request.Method {
		case "HEAD":
			c.Status(200)
		case "OPTIONS":
			c.Status(204)
		default:
			c.JSON(200, api.HealthResponse{
				OK:     true,
				Uptime: time.Since(start).Seconds(),
			})
		}
	}
}
