// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"taste-of-aloha/internal/api"

	"github.com/labstack/echo/v4"
)

const greeting = "Taste of Aloha backend is running 🌺"

var timeNow = time.Now

// HealthHandler 存活檢查，不觸及任何外部依賴
// @Summary     Liveness Check
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, api.HealthResponse{
		Status:    "ok",
		Timestamp: timeNow().UTC().Format(time.RFC3339),
	})
}

// RootHandler 回傳服務問候字串
func RootHandler(c echo.Context) error {
	return c.String(http.StatusOK, greeting)
}
