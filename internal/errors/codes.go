// Package errors defines the structured error codes the HTTP boundary maps
// to status codes.
package errors

import (
	"fmt"
)

// ErrorCode represents a specific failure class for parse operations.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a malformed request.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeAnnotatorFailed indicates the token annotation engine failed.
	ErrCodeAnnotatorFailed ErrorCode = "ANNOTATOR_FAILED"
	// ErrCodeResolverFailed indicates a date-resolution engine failed.
	ErrCodeResolverFailed ErrorCode = "RESOLVER_FAILED"
	// ErrCodeInternal indicates an unclassified server-side failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// ParseError represents a structured error surfaced at the boundary.
type ParseError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// New creates a ParseError without a cause.
func New(code ErrorCode, message string) *ParseError {
	return &ParseError{Code: code, Message: message}
}

// Wrap creates a ParseError wrapping a cause.
func Wrap(code ErrorCode, message string, cause error) *ParseError {
	return &ParseError{Code: code, Message: message, Cause: cause}
}
