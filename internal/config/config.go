package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Feeds     FeedsConfig     `yaml:"feeds"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds the shared-secret date gate settings. The gate is
// disabled when SecretDateHash is empty.
type AuthConfig struct {
	SecretDateHash string        `yaml:"secret_date_hash" env:"AUTH_SECRET_DATE_HASH"`
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"babyfeed"`
	SessionTTL     time.Duration `yaml:"session_ttl"      env:"AUTH_SESSION_TTL"      env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds unlock attempts per client IP.
type RateLimitConfig struct {
	UnlockPerMinute int           `yaml:"unlock_per_minute" env:"RATE_LIMIT_UNLOCK_PER_MINUTE" env-default:"5"`
	UnlockBurst     int           `yaml:"unlock_burst"      env:"RATE_LIMIT_UNLOCK_BURST"      env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"3m"`
}

// FeedsConfig holds feed statistics and prediction parameters.
type FeedsConfig struct {
	DefaultTimezone        string `yaml:"default_timezone"         env:"FEEDS_DEFAULT_TIMEZONE"         env-default:"Asia/Singapore"`
	StatsWindowDays        int    `yaml:"stats_window_days"        env:"FEEDS_STATS_WINDOW_DAYS"        env-default:"7"`
	PredictionHistoryDays  int    `yaml:"prediction_history_days"  env:"FEEDS_PREDICTION_HISTORY_DAYS"  env-default:"7"`
	PredictionHistoryLimit int    `yaml:"prediction_history_limit" env:"FEEDS_PREDICTION_HISTORY_LIMIT" env-default:"5"`
	RenameConcurrency      int    `yaml:"rename_concurrency"       env:"FEEDS_RENAME_CONCURRENCY"       env-default:"4"`

	// Location is resolved from DefaultTimezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// GateEnabled reports whether the shared-secret date gate is configured.
func (c AuthConfig) GateEnabled() bool {
	return c.SecretDateHash != ""
}
