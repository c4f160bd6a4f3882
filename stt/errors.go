package stt

import (
	"errors"
	"fmt"
)

// ErrorCode classifies SDK errors.
type ErrorCode int

const (
	// ErrCodeArgument indicates invalid client construction arguments.
	ErrCodeArgument ErrorCode = iota
	// ErrCodeValidation indicates the builder options violate a
	// constraint. Detected locally, before any network call.
	ErrCodeValidation
	// ErrCodeTransport indicates a connection, timeout, or cancellation
	// failure before a response was received.
	ErrCodeTransport
	// ErrCodeAPI indicates the API returned a non-2xx status.
	ErrCodeAPI
	// ErrCodeDecode indicates a 2xx response with an unparseable body.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeArgument:
		return "argument"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeAPI:
		return "api"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the structured error type returned by this package.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (ErrCodeAPI only, otherwise 0).
	StatusCode int
	// Message describes the error. For API errors it carries the raw
	// response body.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("stt: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("stt: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newArgumentError(msg string) *Error {
	return &Error{Code: ErrCodeArgument, Message: msg}
}

func newValidationError(msg string) *Error {
	return &Error{Code: ErrCodeValidation, Message: msg}
}

func newTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Message: err.Error(), Err: err}
}

func newAPIError(statusCode int, message string, err error) *Error {
	return &Error{Code: ErrCodeAPI, StatusCode: statusCode, Message: message, Err: err}
}

func newDecodeError(err error) *Error {
	return &Error{Code: ErrCodeDecode, Message: err.Error(), Err: err}
}

// IsArgumentError checks if an error is a client construction error.
func IsArgumentError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeArgument
}

// IsValidationError checks if an error is a builder validation error.
func IsValidationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeValidation
}

// IsTransportError checks if an error is a transport-level failure.
func IsTransportError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsAPIError checks if an error is a non-2xx API response. When it is,
// the returned status code is the HTTP status.
func IsAPIError(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrCodeAPI {
		return e.StatusCode, true
	}
	return 0, false
}

// IsDecodeError checks if an error is a response decoding failure.
func IsDecodeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}
