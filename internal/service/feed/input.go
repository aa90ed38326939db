package feed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

const (
	MaxAmount        = 2000
	MaxSolidFoods    = 20
	MaxFoodNameRunes = 100
)

// CreateFeedInput holds the parameters for logging a feed.
type CreateFeedInput struct {
	FeedTime   time.Time
	Amount     int
	WetDiaper  bool
	Pooped     bool
	SolidFoods []string
}

// Validate checks all fields and collects all errors.
func (i CreateFeedInput) Validate() error {
	errs := validateFields(i.FeedTime, i.Amount, i.SolidFoods)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFeedInput holds the parameters for editing a feed. Every mutable
// field is overwritten.
type UpdateFeedInput struct {
	ID         uuid.UUID
	FeedTime   time.Time
	Amount     int
	WetDiaper  bool
	Pooped     bool
	SolidFoods []string
}

// Validate checks all fields and collects all errors.
func (i UpdateFeedInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateFields(i.FeedTime, i.Amount, i.SolidFoods)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFeedInput holds the parameters for deleting a feed.
type DeleteFeedInput struct {
	ID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteFeedInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

func validateFields(feedTime time.Time, amount int, foods []string) []domain.FieldError {
	var errs []domain.FieldError

	if feedTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "feedTime", Message: "required"})
	}
	if amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be non-negative"})
	}
	if amount > MaxAmount {
		errs = append(errs, domain.FieldError{Field: "amount", Message: fmt.Sprintf("max %d ml", MaxAmount)})
	}
	if len(foods) > MaxSolidFoods {
		errs = append(errs, domain.FieldError{Field: "solidFoods", Message: fmt.Sprintf("max %d entries", MaxSolidFoods)})
	}
	for _, f := range foods {
		if len([]rune(domain.NormalizeText(f))) > MaxFoodNameRunes {
			errs = append(errs, domain.FieldError{Field: "solidFoods", Message: fmt.Sprintf("max %d characters per food", MaxFoodNameRunes)})
			break
		}
	}

	return errs
}
