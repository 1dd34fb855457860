package errors

import (
	"fmt"
	"net/http"

	"buyhive/internal/domain/entity"
	"buyhive/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
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
	// Lookup errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid identity token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please try again later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// IsNotFound reports whether err is one of the lookup errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCartNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrNotFound)
}

// DuplicateItemError is returned when a user saves a URL they already saved.
// It carries the existing item so clients can offer to open it instead.
type DuplicateItemError struct {
	Existing *entity.Item
	cartName string
}

// NewDuplicateItemError creates a duplicate error. cartName is the name of a cart
// the existing item sits in, or empty when none could be resolved.
func NewDuplicateItemError(existing *entity.Item, cartName string) *DuplicateItemError {
	return &DuplicateItemError{
		Existing: existing,
		cartName: cartName,
	}
}

// Error implements the error interface
func (e *DuplicateItemError) Error() string {
	if e.cartName != "" {
		return fmt.Sprintf("item already exists in cart %q", e.cartName)
	}

	return "item already exists"
}

// HTTPCode returns the HTTP status code
func (e *DuplicateItemError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *DuplicateItemError) ErrorCode() string {
	return "DUPLICATE_ITEM"
}

// Message returns the user-friendly error message
func (e *DuplicateItemError) Message() string {
	if e.cartName != "" {
		return fmt.Sprintf("This item is already in your cart %q", e.cartName)
	}

	return "This item is already saved"
}

// Details returns the existing item id
func (e *DuplicateItemError) Details() string {
	if e.Existing == nil {
		return ""
	}

	return e.Existing.ItemID
}

// StorageUnavailableError represents a document store failure, implementing the AppError interface
type StorageUnavailableError struct {
	err     error
	details string
}

// NewStorageUnavailableError creates a storage-related error
func NewStorageUnavailableError(err error, details string) AppError {
	return &StorageUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageUnavailableError) Error() string {
	return errors.Wrap(e.err, "storage unavailable").Error()
}

// Unwrap exposes the driver error
func (e *StorageUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StorageUnavailableError) ErrorCode() string {
	return "STORAGE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StorageUnavailableError) Message() string {
	return "Storage is temporarily unavailable"
}

// Details returns detailed error information
func (e *StorageUnavailableError) Details() string {
	return e.details
}
