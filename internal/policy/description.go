package policy

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooShort = errors.New("description is too short")
	ErrDescriptionTooLong  = errors.New("description is too long")
	ErrDescriptionNewlines = errors.New("description must not contain line breaks")
)

// Description is a length/required gate, not a content filter: emoji and
// accented characters pass. Lengths are counted in runes, not bytes.
type Description struct {
	MinLength     int
	MaxLength     int
	Required      bool
	AllowNewlines bool
}

func (p Description) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		if p.Required {
			return ErrDescriptionRequired
		}
		return nil
	}
	n := utf8.RuneCountInString(text)
	if p.MinLength > 0 && n < p.MinLength {
		return ErrDescriptionTooShort
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		return ErrDescriptionTooLong
	}
	if !p.AllowNewlines && strings.ContainsAny(text, "\n\r") {
		return ErrDescriptionNewlines
	}
	return nil
}
