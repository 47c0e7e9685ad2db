package errors

import (
	"fmt"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeFeatureNotEnabled  = "FEATURE_NOT_ENABLED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewValidationError builds a 400 caught before any persistence call.
func NewValidationError(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeValidation,
		HTTPStatus:       400,
	}
}

// NewBusinessError builds a 400 for not-found/ownership failures; the
// message is specific and safe for the client.
func NewBusinessError(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeNotFound,
		HTTPStatus:       400,
	}
}

// NewEntitlementError builds a 403 for a tenant missing a feature.
func NewEntitlementError(message string) *AppError {
	return &AppError{
		TechnicalMessage: message,
		UserMessage:      message,
		Code:             ErrCodeFeatureNotEnabled,
		HTTPStatus:       403,
	}
}
