// Package errors provides structured errors with stable codes for the
// estimation pipeline, so callers can branch on failure class without
// matching message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Estimation error codes.
const (
	CodeValidation         = "VALIDATION_ERROR"         // malformed inputs: lengths, empty data, alpha out of (0,1)
	CodeUnsupportedMethod  = "UNSUPPORTED_METHOD"       // unknown method/interval tag, or missing custom injection
	CodeDomain             = "DOMAIN_ERROR"             // Fisher transform at r = +/-1
	CodeInsufficientSample = "INSUFFICIENT_SAMPLE_SIZE" // variance denominator not positive for n
	CodeDegenerateResample = "DEGENERATE_RESAMPLE"      // every bootstrap replicate was NaN
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is a structured error carrying a stable code.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError with the given code.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates a new AppError with a formatted message.
func Newf(code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context, preserving the code when the
// wrapped error is already an AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{Code: appErr.Code, Message: message, Cause: err}
	}
	return &AppError{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code, walking the wrap chain. Returns "UNKNOWN"
// for errors that did not originate here.
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code string) bool {
	return err != nil && GetCode(err) == code
}

// Common constructors.

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

func UnsupportedMethod(message string) *AppError {
	return New(CodeUnsupportedMethod, message)
}

func Domain(message string) *AppError {
	return New(CodeDomain, message)
}

func InsufficientSample(message string) *AppError {
	return New(CodeInsufficientSample, message)
}

func DegenerateResample(message string) *AppError {
	return New(CodeDegenerateResample, message)
}
