package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a record changed underneath a guarded write (stale version or status).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrAlreadySent indicates that a notification was requested for a record already marked as sent.
var ErrAlreadySent = fmt.Errorf("%w: notification already sent", ErrValidation)

// ErrPeriodRequired indicates that a salary operation was attempted without a target period.
var ErrPeriodRequired = fmt.Errorf("%w: salary period (YYYY-MM) is required", ErrValidation)

// ErrDispatchFailed indicates that the messaging gateway did not accept a notification.
var ErrDispatchFailed = errors.New("notification dispatch failed")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
