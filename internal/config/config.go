package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Verify    VerifyConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VerifyConfig holds verification engine settings.
type VerifyConfig struct {
	BatchConcurrency int `mapstructure:"batch_concurrency"`
	MaxBatchSize     int `mapstructure:"max_batch_size"`
}

// RateLimitConfig holds per-client request rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load reads configuration from environment variables with the LABELCHECK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LABELCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Verify defaults
	v.SetDefault("verify.batch_concurrency", 8)
	v.SetDefault("verify.max_batch_size", 500)

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "LABELCHECK_SERVER_PORT",
		"server.read_timeout":            "LABELCHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "LABELCHECK_SERVER_WRITE_TIMEOUT",
		"server.environment":             "LABELCHECK_SERVER_ENVIRONMENT",
		"log.level":                      "LABELCHECK_LOG_LEVEL",
		"log.format":                     "LABELCHECK_LOG_FORMAT",
		"cors.allowed_origins":           "LABELCHECK_CORS_ALLOWED_ORIGINS",
		"verify.batch_concurrency":       "LABELCHECK_VERIFY_BATCH_CONCURRENCY",
		"verify.max_batch_size":          "LABELCHECK_VERIFY_MAX_BATCH_SIZE",
		"rate_limit.enabled":             "LABELCHECK_RATE_LIMIT_ENABLED",
		"rate_limit.requests_per_second": "LABELCHECK_RATE_LIMIT_REQUESTS_PER_SECOND",
		"rate_limit.burst":               "LABELCHECK_RATE_LIMIT_BURST",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LABELCHECK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LABELCHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Verify = VerifyConfig{
		BatchConcurrency: v.GetInt("verify.batch_concurrency"),
		MaxBatchSize:     v.GetInt("verify.max_batch_size"),
	}
	cfg.RateLimit = RateLimitConfig{
		Enabled:           v.GetBool("rate_limit.enabled"),
		RequestsPerSecond: v.GetFloat64("rate_limit.requests_per_second"),
		Burst:             v.GetInt("rate_limit.burst"),
	}

	return cfg, nil
}
