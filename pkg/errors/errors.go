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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Proxy and probe errors
	ErrProxyInvalid ErrorCode = "PROXY_INVALID"
	ErrProbeFailed  ErrorCode = "PROBE_FAILED"

	// Output errors
	ErrFormatInvalid ErrorCode = "FORMAT_INVALID"
	ErrOutputRender  ErrorCode = "OUTPUT_RENDER"
)

// RepolocError represents a structured error with code and details
type RepolocError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RepolocError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RepolocError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RepolocError) Is(target error) bool {
	var targetErr *RepolocError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RepolocError with the given code and message
func New(code ErrorCode, message string) *RepolocError {
	return &RepolocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RepolocError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RepolocError {
	return &RepolocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RepolocError
func Wrap(err error, code ErrorCode, message string) *RepolocError {
	if err == nil {
		return nil
	}
	return &RepolocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RepolocError {
	if err == nil {
		return nil
	}
	return &RepolocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RepolocError) WithDetail(key string, value interface{}) *RepolocError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var repolocErr *RepolocError
	if errors.As(err, &repolocErr) {
		return repolocErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RepolocError
func GetErrorCode(err error) ErrorCode {
	var repolocErr *RepolocError
	if errors.As(err, &repolocErr) {
		return repolocErr.Code
	}
	return ErrUnknown
}
