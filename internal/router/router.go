// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"taste-of-aloha/internal/cache"
	"taste-of-aloha/internal/database"
	"taste-of-aloha/internal/handler"
	"taste-of-aloha/internal/handler/auth"
	"taste-of-aloha/internal/handler/menu"
	"taste-of-aloha/internal/middleware"
	"taste-of-aloha/internal/model"
)

// Deps 是註冊路由所需的依賴；DB 與 Cache 可為 nil
type Deps struct {
	DB     database.DB
	Cache  cache.Cache
	Menu   menu.Service
	Snacks menu.Service
	Logger logrus.FieldLogger

	// JWTSecret 為空時寫入路由不需認證，也不註冊登入路由
	JWTSecret string
	Staff     model.Staff
	TokenTTL  time.Duration
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.GET("/", handler.RootHandler)
	e.GET("/health", handler.HealthHandler)

	api := e.Group("/api")
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	var write []echo.MiddlewareFunc
	if d.JWTSecret != "" {
		api.POST("/auth/login", auth.LoginHandler(d.Staff, d.JWTSecret, d.TokenTTL))
		write = append(write, middleware.RequireStaff(d.JWTSecret))
	}

	registerResource(api.Group("/menu"), menu.NewHandler(d.Menu, menu.MenuResource, d.Logger), write)
	registerResource(api.Group("/snacks"), menu.NewHandler(d.Snacks, menu.SnackResource, d.Logger), write)
}

func registerResource(g *echo.Group, h *menu.Handler, write []echo.MiddlewareFunc) {
	g.GET("", h.List)
	g.GET("/", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, write...)
	g.POST("/", h.Create, write...)
	g.PUT("/:id", h.Update, write...)
	g.DELETE("/:id", h.Delete, write...)
}
