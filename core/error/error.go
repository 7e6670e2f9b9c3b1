// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual information
//              and metadata. Provides a structured error handling system
//              that stays compatible with Go's standard error interface
//              while carrying codes, severities, and details.
// Version: v0.1.0
// Created: 2025-11-12

package error

import (
	"errors"
	"fmt"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If err is already our Error type, preserve its classification
	var lokaErr *Error
	if errors.As(err, &lokaErr) {
		wrapped := &Error{
			message:   message,
			cause:     err,
			code:      lokaErr.code,
			severity:  lokaErr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}, len(lokaErr.details)),
			operation: lokaErr.operation,
		}
		for k, v := range lokaErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and derives the matching severity
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity sets the error severity explicitly
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a single detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	details := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		details[k] = v
	}
	return details
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// HasCode returns true if the error (or any error in its chain) carries the code
func HasCode(err error, code Code) bool {
	var lokaErr *Error
	if errors.As(err, &lokaErr) {
		return lokaErr.code == code
	}
	return false
}

// GetCode returns the code of the error, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	var lokaErr *Error
	if errors.As(err, &lokaErr) {
		return lokaErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the error, or SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	var lokaErr *Error
	if errors.As(err, &lokaErr) {
		return lokaErr.severity
	}
	return SeverityMedium
}

// IsNotSupported returns true if the error indicates an unsupported
// language or command, the recoverable half of the error taxonomy
func IsNotSupported(err error) bool {
	code := GetCode(err)
	return code == CodeLanguageNotSupported || code == CodeCommandNotSupported
}
