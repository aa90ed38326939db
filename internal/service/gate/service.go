// Package gate implements the shared-secret date gate: whoever knows the
// configured date receives a session token.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/auth"
	"github.com/heartmarshall/babyfeed-backend/internal/config"
	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/metrics"
)

type sessionIssuer interface {
	GenerateSessionToken() (token string, expiresAt time.Time, err error)
}

// UnlockInput holds the date guess.
type UnlockInput struct {
	Date string
}

// Validate checks all fields and collects all errors.
func (i UnlockInput) Validate() error {
	if strings.TrimSpace(i.Date) == "" {
		return domain.NewValidationError("date", "required")
	}
	return nil
}

// Session is an issued session token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service checks date guesses against the configured hash.
type Service struct {
	hash     string
	sessions sessionIssuer
	log      *slog.Logger
}

// NewService creates a new gate service. The gate is disabled when
// cfg.SecretDateHash is empty.
func NewService(log *slog.Logger, sessions sessionIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		hash:     cfg.SecretDateHash,
		sessions: sessions,
		log:      log.With("service", "gate"),
	}
}

// Enabled reports whether a secret date is configured.
func (s *Service) Enabled() bool {
	return s.hash != ""
}

// Unlock issues a session when input.Date matches the secret date.
// A wrong date yields domain.ErrUnauthorized.
func (s *Service) Unlock(ctx context.Context, input UnlockInput) (Session, error) {
	if !s.Enabled() {
		metrics.RecordUnlock("disabled")
		return Session{}, fmt.Errorf("date gate disabled: %w", domain.ErrNotFound)
	}
	if err := input.Validate(); err != nil {
		metrics.RecordUnlock("invalid")
		return Session{}, err
	}

	if err := auth.CompareDate(s.hash, input.Date); err != nil {
		if errors.Is(err, auth.ErrWrongDate) {
			metrics.RecordUnlock("denied")
			s.log.WarnContext(ctx, "unlock rejected")
			return Session{}, domain.ErrUnauthorized
		}
		if errors.Is(err, auth.ErrInvalidDate) {
			metrics.RecordUnlock("invalid")
			return Session{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
		}
		return Session{}, fmt.Errorf("check secret date: %w", err)
	}

	token, expiresAt, err := s.sessions.GenerateSessionToken()
	if err != nil {
		return Session{}, fmt.Errorf("generate session token: %w", err)
	}

	metrics.RecordUnlock("ok")
	s.log.InfoContext(ctx, "session unlocked", slog.Time("expires_at", expiresAt))

	return Session{Token: token, ExpiresAt: expiresAt}, nil
}
