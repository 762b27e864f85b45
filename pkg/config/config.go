package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	PostgresDSN    string
	RedisAddr      string
	MongoURI       string
	MongoDB        string
	SecretKey      string
	LogLevel       string
	PageCacheStore string
	PageCacheTTL   time.Duration
	SessionTTL     time.Duration
	MaxUploadBytes int64
	Seed           bool
}

var ErrNoSecret = errors.New("config: SECRET_KEY is required")

// Load reads the optional .env files and then the process environment.
// Values already present in the environment are never overridden by .env.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed reading .env: %w", err)
	}

	cfg := &Config{
		Addr:           getenv("ADDR", ":8080"),
		PostgresDSN:    getenv("POSTGRES_DSN", "postgresql://localhost/yatube?sslmode=disable"),
		RedisAddr:      getenv("REDIS_ADDR", "redis://localhost:6379/0"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGODB_DB", "yatube"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		PageCacheStore: getenv("PAGE_CACHE_STORE", "redis"),
	}
	if cfg.SecretKey == "" {
		return nil, ErrNoSecret
	}
	if cfg.PageCacheStore != "redis" && cfg.PageCacheStore != "memory" {
		return nil, fmt.Errorf("config: unknown PAGE_CACHE_STORE %q", cfg.PageCacheStore)
	}

	var err error
	if cfg.PageCacheTTL, err = time.ParseDuration(getenv("PAGE_CACHE_TTL", "20s")); err != nil {
		return nil, fmt.Errorf("config: bad PAGE_CACHE_TTL: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getenv("SESSION_TTL", "2160h")); err != nil {
		return nil, fmt.Errorf("config: bad SESSION_TTL: %w", err)
	}
	maxMB, err := strconv.ParseInt(getenv("MAX_UPLOAD_MB", "10"), 10, 64)
	if err != nil || maxMB <= 0 {
		return nil, fmt.Errorf("config: bad MAX_UPLOAD_MB %q", os.Getenv("MAX_UPLOAD_MB"))
	}
	cfg.MaxUploadBytes = maxMB << 20
	if cfg.Seed, err = strconv.ParseBool(getenv("SEED", "false")); err != nil {
		return nil, fmt.Errorf("config: bad SEED: %w", err)
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
