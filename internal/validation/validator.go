package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"daybelt/internal/domain"
)

const defaultLabelMaxLength = 200

// Validator provides common validation utilities
type Validator struct {
	labelMaxLength int
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return &Validator{labelMaxLength: defaultLabelMaxLength}
}

// NewValidatorWithLimit creates a validator with a custom label length limit
func NewValidatorWithLimit(labelMaxLength int) *Validator {
	if labelMaxLength < 1 {
		labelMaxLength = defaultLabelMaxLength
	}
	return &Validator{labelMaxLength: labelMaxLength}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the rune count of a trimmed string is within range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidLabelLength checks a label against the configured maximum
func (v *Validator) IsValidLabelLength(label string) bool {
	return v.IsValidStringLength(label, 1, v.labelMaxLength)
}

// HasControlCharacters reports line breaks, tabs and other control runes
func (v *Validator) HasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsValidTimeRange checks that a display range parses as H:MM–H:MM
func (v *Validator) IsValidTimeRange(timeRange string) bool {
	_, err := domain.ParseSlot(timeRange)
	return err == nil
}

// IsValidDate checks for a YYYY-MM-DD calendar date
func (v *Validator) IsValidDate(date string) bool {
	_, err := domain.ParseDate(date)
	return err == nil
}

// LabelMaxLength returns the configured label limit
func (v *Validator) LabelMaxLength() int {
	return v.labelMaxLength
}
