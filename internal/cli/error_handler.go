package cli

import (
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"worklog/internal/config"
	"worklog/internal/errors"
	"worklog/internal/validation"
)

// OperationError names the step a fatal error interrupted
type OperationError struct {
	Operation string
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Operation, userMessage(e.Err))
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ErrorHandler turns errors into the text shown to the user and decides
// which of them are logged
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorHandler{logger: logger}
}

// Handle ties err to the operation it interrupted
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, Err: err}
}

// Message returns the text printed for err
func (eh *ErrorHandler) Message(err error) string {
	var opErr *OperationError
	if stderrors.As(err, &opErr) {
		return opErr.Error()
	}
	return userMessage(err)
}

// Log records a fatal error unless it only reflects bad input
func (eh *ErrorHandler) Log(err error) {
	if err == nil || !errors.ShouldLogError(err) {
		return
	}

	fields := []zap.Field{zap.Error(err), zap.String("code", eh.GetErrorCode(err))}
	if appErr, ok := errors.AsAppError(err); ok {
		if op, ok := appErr.GetContext("operation"); ok {
			fields = append(fields, zap.Any("operation", op))
		}
	}
	var opErr *OperationError
	if stderrors.As(err, &opErr) {
		fields = append(fields, zap.String("step", opErr.Operation))
	}

	if eh.IsDatabaseError(err) {
		eh.logger.Error("work log storage failed", fields...)
		return
	}
	eh.logger.Warn("command failed", fields...)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return validation.IsValidationError(err) || errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

func userMessage(err error) string {
	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return ve.GetUserFriendlyMessage()
	}
	var ce *config.ConfigError
	if stderrors.As(err, &ce) {
		return ce.Error()
	}
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err)
	}
	return err.Error()
}
