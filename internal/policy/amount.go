package policy

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountRequired     = errors.New("amount is required")
	ErrAmountNotNumeric   = errors.New("amount is not a number")
	ErrAmountNegative     = errors.New("amount must not be negative")
	ErrAmountZero         = errors.New("amount must not be zero")
	ErrAmountBelowMinimum = errors.New("amount is below the minimum")
	ErrAmountAboveMaximum = errors.New("amount is above the maximum")
	ErrAmountTooPrecise   = errors.New("amount has too many decimal places")
	ErrAmountTooLong      = errors.New("amount has too many digits")
)

// maxIntegerDigits caps the raw digit count before the decimal point.
// Comparisons run on the parsed decimal, but an unbounded raw string is
// still rejected up front.
const maxIntegerDigits = 10

// Amount validates monetary input. A zero Min or Max disables that bound.
type Amount struct {
	Min           decimal.Decimal
	Max           decimal.Decimal
	DecimalPlaces int32
	AllowZero     bool
}

// Validate checks a raw input string.
func (p Amount) Validate(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrAmountRequired
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return ErrAmountNotNumeric
	}
	if integerDigits(raw) > maxIntegerDigits {
		return ErrAmountTooLong
	}
	return p.ValidateDecimal(d)
}

// ValidateDecimal checks an already-parsed value.
func (p Amount) ValidateDecimal(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrAmountNegative
	}
	if d.IsZero() {
		if p.AllowZero {
			return nil
		}
		return ErrAmountZero
	}
	if !p.Min.IsZero() && d.LessThan(p.Min) {
		return ErrAmountBelowMinimum
	}
	if !p.Max.IsZero() && d.GreaterThan(p.Max) {
		return ErrAmountAboveMaximum
	}
	if !d.Equal(d.Truncate(p.DecimalPlaces)) {
		return ErrAmountTooPrecise
	}
	return nil
}

func integerDigits(raw string) int {
	raw = strings.TrimLeft(raw, "+-")
	if i := strings.IndexAny(raw, ".eE"); i >= 0 {
		raw = raw[:i]
	}
	count := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
