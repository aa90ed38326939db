package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feed is a single logged feeding event.
type Feed struct {
	ID         uuid.UUID
	FeedTime   time.Time
	Amount     int // millilitres
	WetDiaper  bool
	Pooped     bool
	SolidFoods []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FeedTimePrecision is the resolution feed times are stored with. Clients
// send millisecond timestamps, and the inclusive day window ends at .999.
const FeedTimePrecision = time.Millisecond

// HasFood reports whether any of the feed's solid foods equals name after
// normalization.
func (f *Feed) HasFood(name string) bool {
	name = NormalizeText(name)
	for _, food := range f.SolidFoods {
		if NormalizeText(food) == name {
			return true
		}
	}
	return false
}

// ReplaceFood returns a copy of the feed's solid foods with every entry equal
// to oldName (case-insensitive) replaced by newName, positions preserved.
// changed is false when the result equals the current slice.
func (f *Feed) ReplaceFood(oldName, newName string) (foods []string, changed bool) {
	oldName = NormalizeText(oldName)
	newName = NormalizeText(newName)

	foods = make([]string, len(f.SolidFoods))
	for i, food := range f.SolidFoods {
		if NormalizeText(food) == oldName {
			foods[i] = newName
		} else {
			foods[i] = food
		}
		if foods[i] != f.SolidFoods[i] {
			changed = true
		}
	}
	return foods, changed
}
