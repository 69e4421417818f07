// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by their business code, so detail-carrying copies still
// compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	// Shop-related errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrShopLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"SHOP_LOAD_FAILED",
		"Failed to load shops",
		"",
	)

	ErrShopDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"SHOP_DELETE_FAILED",
		"Failed to delete shops",
		"",
	)

	ErrLocationRequired = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_REQUIRED",
		"Unable to detect your current location. Please allow location capture and try again",
		"",
	)

	ErrNoSelection = NewBaseError(
		http.StatusBadRequest,
		"NO_SELECTION",
		"Nothing selected",
		"",
	)

	// Product-related errors
	ErrProductLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"PRODUCT_LOAD_FAILED",
		"Failed to load products",
		"",
	)

	ErrProductSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"PRODUCT_SAVE_FAILED",
		"Failed to save product",
		"",
	)

	ErrProductDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"PRODUCT_DELETE_FAILED",
		"Failed to delete products",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submitted values are invalid",
		"",
	)

	// Upstream API errors
	ErrUpstreamRejected = NewBaseError(
		http.StatusBadRequest,
		"UPSTREAM_REJECTED",
		"The inventory service rejected the request",
		"",
	)

	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"The inventory service is unavailable",
		"",
	)
)
