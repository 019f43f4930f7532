package policy

import (
	"errors"
	"time"
)

var (
	ErrDateRequired     = errors.New("date is required")
	ErrDateInFuture     = errors.New("date must not be in the future")
	ErrDateTooFarFuture = errors.New("date is too far in the future")
	ErrDateInPast       = errors.New("date must not be in the past")
	ErrDateTooFarPast   = errors.New("date is too far in the past")
)

// Date bounds a transaction timestamp relative to "now". A zero
// MaxFutureDays/MaxPastDays disables that window.
//
// A future date that passes these bounds is still not submittable as-is:
// callers must obtain explicit confirmation first, because a future entry
// changes what "current" balance means. That confirmation is a workflow
// concern, so it is surfaced by IsFuture rather than folded into Validate.
type Date struct {
	AllowFuture   bool
	AllowPast     bool
	MaxFutureDays int
	MaxPastDays   int
	Required      bool
}

func (p Date) Validate(ts, now time.Time) error {
	if ts.IsZero() {
		if p.Required {
			return ErrDateRequired
		}
		return nil
	}
	if ts.After(now) {
		if !p.AllowFuture {
			return ErrDateInFuture
		}
		if p.MaxFutureDays > 0 && ts.After(now.AddDate(0, 0, p.MaxFutureDays)) {
			return ErrDateTooFarFuture
		}
	}
	if ts.Before(now) {
		if !p.AllowPast {
			return ErrDateInPast
		}
		if p.MaxPastDays > 0 && ts.Before(now.AddDate(0, 0, -p.MaxPastDays)) {
			return ErrDateTooFarPast
		}
	}
	return nil
}

// IsFuture reports whether ts lands after now.
func IsFuture(ts, now time.Time) bool {
	return !ts.IsZero() && ts.After(now)
}
