package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config 服務與 CLI 共用的設定
type Config struct {
	Port        string
	DatabaseURL string
	StoreDriver string

	Redis    RedisConfig
	CacheTTL time.Duration
	Workers  int

	LogLevel  string
	LogFormat string

	Auth AuthConfig

	CORSOrigins []string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig JWTSecret 為空時停用員工認證
type AuthConfig struct {
	JWTSecret         string
	StaffUsername     string
	StaffPasswordHash string
	TokenTTL          time.Duration
}

var dotenvLoad = godotenv.Load

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "5001")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("REDIS_DB", "0")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("WORKER_COUNT", "1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("STAFF_USERNAME", "admin")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("CORS_ORIGINS", "*")
}

// Load 先讀取可選的 .env，再由環境變數覆寫預設值
func Load() (*Config, error) {
	// .env 不存在時忽略
	_ = dotenvLoad()

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		StoreDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		Auth: AuthConfig{
			JWTSecret:         v.GetString("JWT_SECRET"),
			StaffUsername:     v.GetString("STAFF_USERNAME"),
			StaffPasswordHash: v.GetString("STAFF_PASSWORD_HASH"),
		},
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}

	var err error
	if cfg.Redis.DB, err = strconv.Atoi(v.GetString("REDIS_DB")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.Workers, err = strconv.Atoi(v.GetString("WORKER_COUNT")); err != nil || cfg.Workers <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT: %q", v.GetString("WORKER_COUNT"))
	}
	if cfg.CacheTTL, err = time.ParseDuration(v.GetString("CACHE_TTL")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	if cfg.Auth.TokenTTL, err = time.ParseDuration(v.GetString("TOKEN_TTL")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// Addr 回傳 HTTP 監聽位址
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
