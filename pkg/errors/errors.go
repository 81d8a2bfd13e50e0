// Package errors provides structured error types for dagsvg.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI can map it to a message and an exit status without
// inspecting strings.
//
// # Error Codes
//
//   - MISSING_POSITION: a node or edge endpoint has no layout position
//   - IO_ERROR: the output file could not be created or written
//   - INVALID_INPUT: the graph itself is malformed
//   - INVALID_CONFIG: a rendering option is out of range or unreadable
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingPosition, "no position for node %q", id)
//	if errors.Is(err, errors.ErrCodeMissingPosition) {
//	    // handle
//	}
//
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeMissingPosition Code = "MISSING_POSITION"
	ErrCodeIO              Code = "IO_ERROR"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// MissingPosition reports the node IDs that have no layout position.
func MissingPosition(ids []string) *Error {
	if len(ids) == 1 {
		return New(ErrCodeMissingPosition, "no position for node %q", ids[0])
	}
	return New(ErrCodeMissingPosition, "no position for nodes %q", ids)
}
