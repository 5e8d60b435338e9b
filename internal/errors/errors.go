// Package errors defines the client's error taxonomy and the formatting
// helpers used by CLI commands. Validation errors never reach the network;
// API errors carry whatever the server said; network errors are logged and
// shown to the user as a generic failure.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/pvlkuz/moodtrack-cli/internal/logger"
)

// ValidationError is a client-side input error, shown inline without a
// network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a ValidationError with a user-facing message.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// APIError is a non-success response from the server. Message holds the
// response body text, which may be empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with status %d", e.Status)
	}
	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Message)
}

// NetworkError means the request could not complete at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("request failed: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// UserMessage picks the text to show the user for err. Validation messages
// and server-provided API error text are surfaced verbatim; everything else
// (network failures, empty API bodies) falls back to the given generic
// message.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var aerr *APIError
	if errors.As(err, &aerr) && aerr.Message != "" {
		return aerr.Message
	}
	return fallback
}

// IsValidation reports whether err is a client-side validation error.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
