package validation

import (
	"fmt"
	"strings"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange  ValidationErrorType = "invalid_range"
)

// Messages printed when an input is rejected.
const (
	MsgEmployeeName      = "Invalid entry, you must enter a name i.e. Stuart McIntosh"
	MsgTaskRequired      = "You must enter a task!"
	MsgTaskTooLong       = "A task cannot be more than %d characters long!"
	MsgDateFormat        = "Invalid entry. The date entered must use the format dd/mm/yy hh:mm"
	MsgStartInFuture     = "The start date cannot be in the future!"
	MsgCompletedOutRange = "The completed date cannot be before the start date or after the current date and time!"
	MsgSearchText        = "Invalid entry, you must enter a string to search for!"
	MsgNumber            = "Invalid entry, you must enter a number"
	MsgRangeOrder        = "Invalid entry, the first number of a range cannot be greater than the second"
	MsgChoice            = "Invalid entry, choose an ID between 1 and %d"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// HasErrors returns true if the ValidationError has any errors
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddError adds a new field error to the validation error
func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

// NewValidationError creates a new ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}

// fieldError builds a ValidationError holding a single field error.
func fieldError(field string, errorType ValidationErrorType, message string, value interface{}) *ValidationError {
	ve := NewValidationError()
	ve.AddError(field, errorType, message, value)
	return ve
}

// GetUserFriendlyMessage returns the message shown at the prompt
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "Input validation failed"
	}

	if len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}

	var messages []string
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "\n")
}
