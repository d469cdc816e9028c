package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeDuplicateListener indicates a handler is already subscribed to the event type
	CodeDuplicateListener Code = "duplicate_listener"

	// CodeListenerFailure indicates a handler returned an error or panicked during dispatch
	CodeListenerFailure Code = "listener_failure"
)

// Error represents a bus error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var busErr *Error
	if errors.As(err, &busErr) {
		return &Error{
			Code:    busErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(busErr.Meta),
		}
	}

	// Otherwise, create unknown error
	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// DuplicateListener creates a duplicate listener error
func DuplicateListener(message string) *Error {
	return New(CodeDuplicateListener, message)
}

// DuplicateListenerf creates a formatted duplicate listener error
func DuplicateListenerf(format string, args ...any) *Error {
	return Newf(CodeDuplicateListener, format, args...)
}

// ListenerFailure creates a listener failure error
func ListenerFailure(message string) *Error {
	return New(CodeListenerFailure, message)
}

// ListenerFailuref creates a formatted listener failure error
func ListenerFailuref(format string, args ...any) *Error {
	return Newf(CodeListenerFailure, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var busErr *Error
	if errors.As(err, &busErr) {
		return busErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsDuplicateListener checks if the error is a duplicate listener error
func IsDuplicateListener(err error) bool {
	return Is(err, CodeDuplicateListener)
}

// IsListenerFailure checks if the error is a listener failure error
func IsListenerFailure(err error) bool {
	return Is(err, CodeListenerFailure)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var busErr *Error
	if errors.As(err, &busErr) {
		return busErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var busErr *Error
	if errors.As(err, &busErr) {
		return busErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
