package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/babyfeed-backend/internal/config"
)

// Run is the application entry point. It loads configuration from
// configPath (see config.LoadFile), initializes the logger, connects to the
// database and serves HTTP until ctx is done.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("default_timezone", cfg.Feeds.DefaultTimezone),
		slog.Bool("date_gate", cfg.Auth.GateEnabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return Serve(ctx, cfg, logger, pool)
}
