// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"taste-of-aloha/internal/api"
	"taste-of-aloha/internal/cache"
	"taste-of-aloha/internal/database"

	"github.com/labstack/echo/v4"
)

const pingKey = "ping"

// PingHandler 就緒檢查：確認資料庫與快取皆可用
// db 或 cch 為 nil 時略過該項檢查（記憶體模式或未啟用快取）
// @Summary     Readiness Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
			}
		}
		if cch != nil {
			if err := cch.Set(ctx, pingKey, "pong", 10*time.Second).Err(); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
