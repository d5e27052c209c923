package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, expired or rejected session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the backend refused the action for the current user.
var ErrForbidden = errors.New("forbidden")

// ErrTransport indicates that the backend could not be reached or answered garbage.
var ErrTransport = errors.New("backend unreachable")

// ErrDeclined is returned when the user did not confirm a destructive action.
var ErrDeclined = errors.New("action not confirmed")

// ErrStaleResponse is returned when a newer load superseded the one that produced a response.
var ErrStaleResponse = errors.New("stale response discarded")

// APIError is a non-2xx answer of the business backend.
type APIError struct {
	Status  int
	Message string // value of the "error" field in the response body, may be empty
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.Status)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Message)
}

// Unwrap maps the HTTP status onto the sentinel errors so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrDuplicate
	case e.Status >= 400 && e.Status < 500:
		return ErrValidation
	default:
		return nil
	}
}

// IsClientError reports whether the backend rejected the request itself (4xx).
func (e *APIError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// ServerMessage returns the backend-provided message of a rejected request, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsClientError() && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// AppError carries an HTTP status for failures raised inside the panel itself.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
