package validation

import (
	"fmt"
	"strings"
	"time"
)

// EntryValidator classifies the fields typed while adding a work log entry
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator(v *Validator) *EntryValidator {
	if v == nil {
		v = NewValidator()
	}
	return &EntryValidator{validator: v}
}

// ValidateEmployeeName accepts a name made of at least two words
func (ev *EntryValidator) ValidateEmployeeName(input string) (string, error) {
	if !ev.validator.HasMinimumWords(input, 2) {
		return "", fieldError("employee_name", ErrorTypeInvalidFormat, MsgEmployeeName, input)
	}
	return strings.TrimSpace(input), nil
}

// ValidateTask accepts a non-empty task no longer than the configured maximum
func (ev *EntryValidator) ValidateTask(input string) (string, error) {
	task := strings.TrimSpace(input)
	if !ev.validator.IsNonEmptyString(task) {
		return "", fieldError("completed_task", ErrorTypeRequired, MsgTaskRequired, input)
	}

	maxLen := ev.validator.getTaskMaxLength()
	if !ev.validator.IsValidStringLength(task, 1, maxLen) {
		return "", fieldError("completed_task", ErrorTypeInvalidLength, fmt.Sprintf(MsgTaskTooLong, maxLen), input)
	}
	return task, nil
}

// ValidateDateStarted accepts a well formed date strictly before now
func (ev *EntryValidator) ValidateDateStarted(input string) (time.Time, error) {
	started, ok := ev.validator.ParseDate(input)
	if !ok {
		return time.Time{}, fieldError("date_started", ErrorTypeInvalidFormat, MsgDateFormat, input)
	}
	if !started.Before(ev.validator.Now()) {
		return time.Time{}, fieldError("date_started", ErrorTypeInvalidRange, MsgStartInFuture, input)
	}
	return started, nil
}

// ValidateDateCompleted accepts a well formed date strictly after started and before now
func (ev *EntryValidator) ValidateDateCompleted(input string, started time.Time) (time.Time, error) {
	completed, ok := ev.validator.ParseDate(input)
	if !ok {
		return time.Time{}, fieldError("date_completed", ErrorTypeInvalidFormat, MsgDateFormat, input)
	}
	if !completed.After(started) || !completed.Before(ev.validator.Now()) {
		return time.Time{}, fieldError("date_completed", ErrorTypeInvalidRange, MsgCompletedOutRange, input)
	}
	return completed, nil
}
