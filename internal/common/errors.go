package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes
const (
	CodeConfigMissing     = "CONFIG_MISSING"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeConnectionFailure = "CONNECTION_FAILURE"
	CodeDateFormat        = "DATE_FORMAT"
	CodeDatabase          = "DATABASE"
	CodeValidation        = "VALIDATION"
)

// Common application errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfigMissing = errors.New("configuration missing")
	ErrConnection    = errors.New("connection failure")
	ErrDatabase      = errors.New("database error")
	ErrDateFormat    = errors.New("date format error")
	ErrValidation    = errors.New("validation failed")
	ErrRunInProgress = errors.New("another pipeline run is in progress")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// CodeOf returns the AppError code in err's chain, or "" when there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
