// Package errors provides structured error types for synplot.
//
// Error codes give callers a machine-readable handle on failure classes:
// layout parse failures abort before any drawing, edge reference failures
// abort before link rendering, and missing anchors are recoverable (the
// offending link is skipped).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeParse, "layout row %d: bad field %q", n, f)
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure classes.
const (
	// Input parsing errors (layout rows, bed rows, block rows)
	ErrCodeParse Code = "PARSE_ERROR"

	// An edge row references a track index that does not exist
	ErrCodeReference Code = "REFERENCE_ERROR"

	// A link references a feature absent from the anchor map (recoverable)
	ErrCodeAnchorMissing Code = "ANCHOR_MISSING"

	// Degenerate geometry: zero-length span, zero scale
	ErrCodeGeometry Code = "GEOMETRY_ERROR"

	// Output format / rendering surface errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Missing input files
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Unexpected internal errors
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

// Is reports whether err carries the given error code.
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
