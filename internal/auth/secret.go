package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DateLayout is the format of the shared secret date.
const DateLayout = "2006-01-02"

var (
	// ErrWrongDate is returned by CompareDate when the date does not match.
	ErrWrongDate = errors.New("date does not match")
	// ErrInvalidDate is returned when a date is not a real YYYY-MM-DD day.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

// HashDate returns the bcrypt hash stored as auth.secret_date_hash.
func HashDate(date string) (string, error) {
	date, err := canonicalDate(date)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(date), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash date: %w", err)
	}
	return string(hash), nil
}

// CompareDate checks date against a hash produced by HashDate.
func CompareDate(hash, date string) error {
	date, err := canonicalDate(date)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(date)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrWrongDate
		}
		return fmt.Errorf("compare date: %w", err)
	}
	return nil
}

// canonicalDate re-formats date so 2024-1-5 style input cannot slip past.
func canonicalDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t.Format(DateLayout), nil
}
