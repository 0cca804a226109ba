package errors

import (
	"errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Constructors for the error taxonomy used across services:
// NotFound for missing resources, Validation for malformed or rejected
// input, Conflict when no vehicle is free for the requested criteria,
// System for storage failures.
func NotFound(msg string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, msg)
}

func Validation(msg string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, msg)
}

func Conflict(msg string) *HTTPError {
	return NewHTTPError(http.StatusConflict, msg)
}

func System(msg string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, msg)
}

func Unauthorized(msg string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, msg)
}

// StatusOf returns the HTTP status for err, defaulting to 500 for
// anything that is not an HTTPError.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
