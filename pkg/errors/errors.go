package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Abbreviation errors
	ErrParse ErrorCode = "PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigCycle ErrorCode = "CONFIG_CYCLE"

	// Profile errors
	ErrProfileInvalid ErrorCode = "PROFILE_INVALID"
)

// ZenError represents a structured error with code and details
type ZenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ZenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ZenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ZenError) Is(target error) bool {
	var targetErr *ZenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ZenError with the given code and message
func New(code ErrorCode, message string) *ZenError {
	return &ZenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ZenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ZenError {
	return &ZenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ZenError
func Wrap(err error, code ErrorCode, message string) *ZenError {
	if err == nil {
		return nil
	}
	return &ZenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ZenError {
	if err == nil {
		return nil
	}
	return &ZenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ZenError) WithDetail(key string, value interface{}) *ZenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var zenErr *ZenError
	if errors.As(err, &zenErr) {
		return zenErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ZenError
func GetErrorCode(err error) ErrorCode {
	var zenErr *ZenError
	if errors.As(err, &zenErr) {
		return zenErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ZenError
func GetErrorDetails(err error) map[string]interface{} {
	var zenErr *ZenError
	if errors.As(err, &zenErr) {
		return zenErr.Details
	}
	return nil
}
