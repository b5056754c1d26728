package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Profile errors
	ErrProfileDecode     ErrorCode = "PROFILE_DECODE"
	ErrProfileNoPayload  ErrorCode = "PROFILE_NO_PAYLOAD"
	ErrProfileUnreadable ErrorCode = "PROFILE_UNREADABLE"

	// Validation errors, raised before any installer call
	ErrMissingCredentials ErrorCode = "MISSING_CREDENTIALS"
	ErrMissingNetworkName ErrorCode = "MISSING_NETWORK_NAME"
	ErrInsufficientData   ErrorCode = "INSUFFICIENT_DATA"

	// Installer errors
	ErrPlatform        ErrorCode = "PLATFORM"
	ErrBackendNotFound ErrorCode = "BACKEND_NOT_FOUND"
	ErrUnsupported     ErrorCode = "UNSUPPORTED"

	// Transport and storage errors
	ErrFetch     ErrorCode = "FETCH"
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrStoreLoad ErrorCode = "STORE_LOAD"
	ErrStoreSave ErrorCode = "STORE_SAVE"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Reason returns the innermost message without the code prefix. Platform
// failures use it to surface the installer's text verbatim.
func (e *Error) Reason() string {
	if e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	return e.Message
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// GetErrorMessage returns the message without code prefix or wrapped
// cause, or err.Error() if not an *Error
func GetErrorMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// UserMessage returns the messages of err and of every error it wraps,
// joined with ": " and without code prefixes
func UserMessage(err error) string {
	var parts []string
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, e.Message)
		err = e.Wrapped
	}
	return strings.Join(parts, ": ")
}

// IsValidation reports whether err is one of the dispatcher's validation
// rejections.
func IsValidation(err error) bool {
	switch GetErrorCode(err) {
	case ErrMissingCredentials, ErrMissingNetworkName, ErrInsufficientData:
		return true
	}
	return false
}
