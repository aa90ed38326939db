package app

import (
	"log/slog"

	"github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres"
	feedrepo "github.com/heartmarshall/babyfeed-backend/internal/adapter/postgres/feed"
	"github.com/heartmarshall/babyfeed-backend/internal/auth"
	"github.com/heartmarshall/babyfeed-backend/internal/config"
	"github.com/heartmarshall/babyfeed-backend/internal/service/feed"
	"github.com/heartmarshall/babyfeed-backend/internal/service/gate"
	"github.com/heartmarshall/babyfeed-backend/internal/service/predict"
	"github.com/heartmarshall/babyfeed-backend/internal/service/solidfood"
	"github.com/heartmarshall/babyfeed-backend/internal/service/stats"
)

// Services holds the wired application services.
type Services struct {
	Feeds      *feed.Service
	Stats      *stats.Service
	Predict    *predict.Service
	SolidFoods *solidfood.Service
	Gate       *gate.Service
	Sessions   *auth.JWTManager
}

// NewServices wires repositories and services over db, normally a
// *pgxpool.Pool.
func NewServices(logger *slog.Logger, cfg *config.Config, db postgres.DB) *Services {
	repo := feedrepo.New(db)
	txm := postgres.NewTxManager(db)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	return &Services{
		Feeds:      feed.NewService(logger, repo),
		Stats:      stats.NewService(logger, repo, cfg.Feeds),
		Predict:    predict.NewService(logger, repo, cfg.Feeds),
		SolidFoods: solidfood.NewService(logger, repo, txm, cfg.Feeds),
		Gate:       gate.NewService(logger, jwtMgr, cfg.Auth),
		Sessions:   jwtMgr,
	}
}
