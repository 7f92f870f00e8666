package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"worklog/internal/config"
)

var (
	exactMinutesPattern = regexp.MustCompile(`^(\d+)$`)
	rangeMinutesPattern = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
	now    func() time.Time
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
		now:    time.Now,
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
		now:    time.Now,
	}
}

// WithClock replaces the source of the current time.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasMinimumWords checks if s holds at least n whitespace-separated words
func (v *Validator) HasMinimumWords(s string, n int) bool {
	return len(strings.Fields(s)) >= n
}

// IsValidStringLength checks if a trimmed string's character count is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// ParseDate parses s with the configured date layout in local time
func (v *Validator) ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(v.getDateLayout(), strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Now returns the current time as seen by the validator
func (v *Validator) Now() time.Time {
	return v.now()
}

// getTaskMaxLength returns configured maximum task length or default
func (v *Validator) getTaskMaxLength() int {
	if v.config != nil && v.config.Validation.TaskMaxLength > 0 {
		return v.config.Validation.TaskMaxLength
	}
	return 30
}

// getDateLayout returns configured date layout or default
func (v *Validator) getDateLayout() string {
	if v.config != nil && v.config.Validation.DateLayout != "" {
		return v.config.Validation.DateLayout
	}
	return "2/1/06 15:04"
}
