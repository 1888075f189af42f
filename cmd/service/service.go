// @title        Taste of Aloha API
// @version      1.0
// @description  Taste of Aloha 餐廳菜單與點心的後端 API 文件
// @host         localhost:5001
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <token>
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taste-of-aloha/internal/cache"
	"taste-of-aloha/internal/config"
	"taste-of-aloha/internal/database"
	"taste-of-aloha/internal/logging"
	appmw "taste-of-aloha/internal/middleware"
	"taste-of-aloha/internal/model"
	"taste-of-aloha/internal/router"
	"taste-of-aloha/internal/service"
	"taste-of-aloha/internal/store"
	"taste-of-aloha/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "taste-of-aloha/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const (
	fillQueueSize   = 64
	shutdownTimeout = 10 * time.Second
)

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = serveUntilSignal
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// serveUntilSignal 啟動 HTTP 伺服器，收到 SIGINT/SIGTERM 後優雅關閉
func serveUntilSignal(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger 建立失敗: %w", err)
	}

	var (
		db    database.DB
		menus store.MenuStore
	)
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err = newPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("DB 連線失敗: %w", err)
		}
		defer db.Close()

		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
		menus = store.NewPostgresMenuStore(db)
	default:
		logger.Warn("using in-memory store; data is lost on restart")
		menus = store.NewMemoryMenuStore()
	}

	var cch cache.Cache
	if cfg.Redis.Addr != "" {
		cch, err = newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer cch.Close()

		wp := newWorkerPool(cfg.Workers, fillQueueSize)
		defer wp.Stop()

		menus = store.NewCachedMenuStore(menus, cch, wp, cfg.CacheTTL, logger)
	}

	if cfg.Auth.JWTSecret != "" && cfg.Auth.StaffPasswordHash == "" {
		logger.Warn("JWT_SECRET is set but STAFF_PASSWORD_HASH is empty; staff login will always fail")
	}

	e := newEcho(cfg, logger)
	router.Setup(e, router.Deps{
		DB:        db,
		Cache:     cch,
		Menu:      service.NewMenuService(menus, ""),
		Snacks:    service.NewMenuService(menus, model.SnackCategory),
		Logger:    logger,
		JWTSecret: cfg.Auth.JWTSecret,
		Staff: model.Staff{
			Username:     cfg.Auth.StaffUsername,
			PasswordHash: cfg.Auth.StaffPasswordHash,
		},
		TokenTTL: cfg.Auth.TokenTTL,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.WithFields(logrus.Fields{
		"addr":  cfg.Addr(),
		"store": cfg.StoreDriver,
		"cache": cch != nil,
		"auth":  cfg.Auth.JWTSecret != "",
	}).Info("Taste of Aloha backend starting")
	return startServer(e, cfg.Addr())
}

func newEcho(cfg *config.Config, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	return e
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
