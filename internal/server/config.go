package server

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the HTTP server settings. Values come from PAISA_* environment
// variables, optionally seeded from a .env file.
type Config struct {
	ListenAddr   string
	RedisAddr    string
	CacheTTL     time.Duration
	RateLimit    int
	RateWindow   time.Duration
	OTELEndpoint string
	ServiceName  string
	LogLevel     string
}

// LoadConfig reads the environment and fills in defaults.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine, the environment alone is enough.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PAISA")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("rate_limit", 60)
	v.SetDefault("rate_window", "1m")
	v.SetDefault("otel_endpoint", "")
	v.SetDefault("service_name", "paisa-server")
	v.SetDefault("log_level", "info")

	cfg := &Config{
		ListenAddr:   v.GetString("listen_addr"),
		RedisAddr:    v.GetString("redis_addr"),
		CacheTTL:     v.GetDuration("cache_ttl"),
		RateLimit:    v.GetInt("rate_limit"),
		RateWindow:   v.GetDuration("rate_window"),
		OTELEndpoint: v.GetString("otel_endpoint"),
		ServiceName:  v.GetString("service_name"),
		LogLevel:     v.GetString("log_level"),
	}

	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimit)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", cfg.CacheTTL)
	}
	return cfg, nil
}

// BuildLogger creates the production logger at the configured level.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
