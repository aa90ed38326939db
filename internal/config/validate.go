package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.GateEnabled() {
		if _, err := bcrypt.Cost([]byte(c.Auth.SecretDateHash)); err != nil {
			return fmt.Errorf("auth.secret_date_hash is not a bcrypt hash: %w", err)
		}
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("auth.jwt_secret must be at least 32 characters when the date gate is enabled (got %d)", len(c.Auth.JWTSecret))
		}
	}

	if c.RateLimit.UnlockPerMinute <= 0 {
		return fmt.Errorf("rate_limit.unlock_per_minute must be > 0 (got %d)", c.RateLimit.UnlockPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	if err := c.Feeds.validate(); err != nil {
		return fmt.Errorf("feeds: %w", err)
	}

	return nil
}

func (f *FeedsConfig) validate() error {
	loc, err := time.LoadLocation(f.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("default_timezone %q: %w", f.DefaultTimezone, err)
	}
	f.Location = loc

	if f.StatsWindowDays <= 0 {
		return fmt.Errorf("stats_window_days must be > 0 (got %d)", f.StatsWindowDays)
	}
	if f.PredictionHistoryDays <= 0 {
		return fmt.Errorf("prediction_history_days must be > 0 (got %d)", f.PredictionHistoryDays)
	}
	if f.PredictionHistoryLimit < 0 {
		return fmt.Errorf("prediction_history_limit must be >= 0 (got %d)", f.PredictionHistoryLimit)
	}
	if f.RenameConcurrency <= 0 {
		return fmt.Errorf("rename_concurrency must be > 0 (got %d)", f.RenameConcurrency)
	}

	return nil
}
