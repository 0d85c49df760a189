// Package errors provides structured error types for re2ab.
//
// Every failure the tool can report carries a machine-readable [Code] so the
// CLI, tests and scripts wrapping the binary can tell a missing file from a
// malformed document without matching on message text.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: The document, configuration or arguments are unusable
//   - FILE_NOT_FOUND, PERMISSION_DENIED, IO_ERROR: Filesystem failures
//   - NEEDS_REWRITE: A --check run found paths that are not yet absolute
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPathValue, "%s: expected a string, got %s", ptr, kind)
//	if errors.Is(err, errors.ErrCodeInvalidPathValue) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidJSON      Code = "INVALID_JSON"
	ErrCodeInvalidPathValue Code = "INVALID_PATH_VALUE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidKey       Code = "INVALID_KEY"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Filesystem errors
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodePermissionDenied Code = "PERMISSION_DENIED"
	ErrCodeIO               Code = "IO_ERROR"

	// Check mode
	ErrCodeNeedsRewrite Code = "NEEDS_REWRITE"

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

// WrapFS wraps a filesystem error, picking the code from the cause:
// FILE_NOT_FOUND, PERMISSION_DENIED, or IO_ERROR for anything else.
func WrapFS(cause error, format string, args ...any) *Error {
	code := ErrCodeIO
	switch {
	case errors.Is(cause, fs.ErrNotExist):
		code = ErrCodeFileNotFound
	case errors.Is(cause, fs.ErrPermission):
		code = ErrCodePermissionDenied
	}
	return Wrap(code, cause, format, args...)
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
// For *Error types, returns the message without the code prefix,
// followed by the cause when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
