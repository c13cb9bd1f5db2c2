// Package errors provides structured error types for amoor.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages that locate the faulty input
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Malformed input (config file, frame section, anchor table, template)
//   - MISSING_KEY, DUPLICATE_KEY: Referential inconsistency inside a model
//   - FILE_NOT_FOUND: Missing input file
//   - INTERNAL_*: Broken internal invariants
//
// No error is retryable: every failure ends the pipeline run and no partial
// output is produced.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidAnchor, "anchor %d: horizontal distance must be positive", idx)
//	if errors.Is(err, errors.ErrCodeInvalidAnchor) {
//	    // Report to user
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Malformed input
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidGrid     Code = "INVALID_GRID"
	ErrCodeInvalidAnchor   Code = "INVALID_ANCHOR"
	ErrCodeInvalidTemplate Code = "INVALID_TEMPLATE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Referential inconsistency
	ErrCodeMissingKey   Code = "MISSING_KEY"
	ErrCodeDuplicateKey Code = "DUPLICATE_KEY"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// IsInput reports whether err describes malformed user input rather than
// a broken internal invariant.
func IsInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidConfig, ErrCodeInvalidGrid,
		ErrCodeInvalidAnchor, ErrCodeInvalidTemplate, ErrCodeInvalidFormat,
		ErrCodeInvalidPath, ErrCodeFileNotFound:
		return true
	}
	return false
}

// RowError locates a malformed record in a tabular input.
// Row is 1-based; Anchor is the anchor index when it could be read.
type RowError struct {
	Row    int
	Anchor string
	Column string
	Err    error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	loc := fmt.Sprintf("row %d", e.Row)
	if e.Anchor != "" {
		loc += fmt.Sprintf(" (anchor %s)", e.Anchor)
	}
	if e.Column != "" {
		loc += fmt.Sprintf(", column %q", e.Column)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

// Unwrap returns the wrapped error.
func (e *RowError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *RowError) Code() Code {
	return ErrCodeInvalidAnchor
}
