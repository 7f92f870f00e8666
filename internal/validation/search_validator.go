package validation

import (
	"fmt"
	"strconv"
	"strings"

	"worklog/internal/domain"
)

// SearchValidator classifies the criteria typed in the search menu
type SearchValidator struct {
	validator *Validator
}

// NewSearchValidator creates a new search validator
func NewSearchValidator(v *Validator) *SearchValidator {
	if v == nil {
		v = NewValidator()
	}
	return &SearchValidator{validator: v}
}

// ValidateSearchText accepts any non-blank text
func (sv *SearchValidator) ValidateSearchText(input string) (string, error) {
	if !sv.validator.IsNonEmptyString(input) {
		return "", fieldError("search_text", ErrorTypeRequired, MsgSearchText, input)
	}
	return strings.TrimSpace(input), nil
}

// ValidateDuration accepts "N" or "low-high" minutes, spaces allowed around the dash
func (sv *SearchValidator) ValidateDuration(input string) (domain.DurationQuery, error) {
	text := strings.TrimSpace(input)

	if m := exactMinutesPattern.FindStringSubmatch(text); m != nil {
		minutes, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return domain.DurationQuery{}, fieldError("duration", ErrorTypeInvalidFormat, MsgNumber, input)
		}
		return domain.ExactDuration(minutes), nil
	}

	if m := rangeMinutesPattern.FindStringSubmatch(text); m != nil {
		low, errLow := strconv.ParseInt(m[1], 10, 64)
		high, errHigh := strconv.ParseInt(m[2], 10, 64)
		if errLow != nil || errHigh != nil {
			return domain.DurationQuery{}, fieldError("duration", ErrorTypeInvalidFormat, MsgNumber, input)
		}
		if low > high {
			return domain.DurationQuery{}, fieldError("duration", ErrorTypeInvalidRange, MsgRangeOrder, input)
		}
		return domain.DurationRange(low, high), nil
	}

	return domain.DurationQuery{}, fieldError("duration", ErrorTypeInvalidFormat, MsgNumber, input)
}

// ValidateChoice accepts a 1-based position into a list of size n
func (sv *SearchValidator) ValidateChoice(input string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fieldError("choice", ErrorTypeInvalidFormat, MsgNumber, input)
	}
	if choice < 1 || choice > n {
		return 0, fieldError("choice", ErrorTypeInvalidValue, fmt.Sprintf(MsgChoice, n), input)
	}
	return choice, nil
}
