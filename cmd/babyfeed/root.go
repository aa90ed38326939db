package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/babyfeed-backend/internal/app"
	"github.com/heartmarshall/babyfeed-backend/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "babyfeed",
	Short: "Baby feed tracker backend",
	Long: `babyfeed serves the feed tracker HTTP API and provides maintenance
commands for the feed database.

Configuration is read from --config, else CONFIG_PATH, else ./config.yaml,
then overridden by .env and the environment.`,
	SilenceUsage: true,
}

var configFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to the YAML config file")
}

// configPath resolves the config file: flag, then CONFIG_PATH.
func configPath() string {
	if configFlag != "" {
		return configFlag
	}
	return os.Getenv("CONFIG_PATH")
}

// deps is what the database-backed commands need.
type deps struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func (d *deps) Close() {
	d.pool.Close()
}

// connect loads configuration, builds the logger and opens the pool.
func connect(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadFile(configPath())
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &deps{cfg: cfg, logger: logger, pool: pool}, nil
}
