package config

import (
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func noDotenv(t *testing.T) {
	t.Cleanup(func() { dotenvLoad = godotenv.Load })
	dotenvLoad = func(...string) error { return nil }
}

func TestLoadDefaults(t *testing.T) {
	noDotenv(t)
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":5001", cfg.Addr())
	require.Equal(t, DriverMemory, cfg.StoreDriver)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "admin", cfg.Auth.StaffUsername)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Empty(t, cfg.Redis.Addr)
	require.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	noDotenv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/aloha")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, DriverPostgres, cfg.StoreDriver)
	require.Equal(t, "postgres://u:p@localhost/aloha", cfg.DatabaseURL)
	require.Equal(t, RedisConfig{Addr: "localhost:6379", DB: 2}, cfg.Redis)
	require.Equal(t, 30*time.Second, cfg.CacheTTL)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "s", cfg.Auth.JWTSecret)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadErrors(t *testing.T) {
	noDotenv(t)

	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("STORE_DRIVER", "mongo")
	_, err = Load()
	require.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_DB", "x")
	_, err = Load()
	require.ErrorContains(t, err, "REDIS_DB")

	t.Setenv("REDIS_DB", "0")
	t.Setenv("WORKER_COUNT", "0")
	_, err = Load()
	require.ErrorContains(t, err, "WORKER_COUNT")

	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("CACHE_TTL", "soon")
	_, err = Load()
	require.ErrorContains(t, err, "CACHE_TTL")

	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("TOKEN_TTL", "-")
	_, err = Load()
	require.ErrorContains(t, err, "TOKEN_TTL")
}
