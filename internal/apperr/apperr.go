// Package apperr provides the error taxonomy surfaced to callers.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for presentation at the adapter boundary.
type Code string

const (
	// CodeNotFound signals a missing user or an empty query result.
	CodeNotFound Code = "NOT_FOUND"
	// CodeValidation signals malformed client input (dates, limit, username).
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeInternal signals a store or plumbing failure.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is an application error with a classification code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
