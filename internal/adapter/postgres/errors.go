package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. what names the
// operation target for the message, e.g. "feed 3f2c…" or "list feeds".
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, what string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", what, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return fmt.Errorf("%s: %w", what, domain.ErrAlreadyExists)
		case pgErr.Code == "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
		case pgErr.Code == "23514": // check_violation
			return fmt.Errorf("%s: %w", what, domain.ErrValidation)
		case pgErr.Code == "22P02": // invalid_text_representation
			return fmt.Errorf("%s: %w", what, domain.ErrValidation)
		case isUnavailableCode(pgErr.Code):
			return fmt.Errorf("%s: %w: %w", what, domain.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%s: %w", what, err)
	}

	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", what, domain.ErrStoreUnavailable, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", what, err)
}

// isUnavailableCode matches SQLSTATE class 08 (connection exception),
// too_many_connections and the 57P0x shutdown codes.
func isUnavailableCode(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "53300", "57P01", "57P02", "57P03":
		return true
	}
	return false
}

func isTransient(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
