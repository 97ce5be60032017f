// Package errors provides application-level error types and utilities.
// Each pipeline failure maps to exactly one user-facing AppError; the underlying
// cause is kept for logging and never rendered to the caller.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeInput       ErrorType = "input_error"
	ErrorTypeAcquisition ErrorType = "acquisition_error"
	ErrorTypePersistence ErrorType = "persistence_error"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeInternal    ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the internal cause to errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Cause returns the internal error this AppError was built from, if any.
func (e *AppError) Cause() error {
	return e.cause
}

// WithCause attaches an internal cause and returns the same error.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewInputError creates an error for requests without usable url or text.
func NewInputError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInput, http.StatusBadRequest, message, details)
}

// NewAcquisitionError creates an error for fetch or extraction failures.
func NewAcquisitionError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAcquisition, http.StatusInternalServerError, message, details)
}

// NewPersistenceError creates an error for a failed primary store write.
func NewPersistenceError(message string, details ...string) *AppError {
	return newAppError(ErrorTypePersistence, http.StatusInternalServerError, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsInputError(err error) bool {
	return isType(err, ErrorTypeInput)
}

func IsAcquisitionError(err error) bool {
	return isType(err, ErrorTypeAcquisition)
}

func IsPersistenceError(err error) bool {
	return isType(err, ErrorTypePersistence)
}

func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}
