package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Envelope status codes carried by every response.
const (
	StatusSuccess         = "SUCCESS"
	StatusUnauthorized    = "UNAUTHORIZED"
	StatusInvalidArgument = "INVALID_ARGUMENT"
	StatusDatabaseError   = "DATABASE_ERROR"
	StatusSystemError     = "SYSTEM_ERROR"
	StatusUnknownError    = "UNKNOWN_ERROR"
)

// ApiError standardizes application errors across layers.
type ApiError struct {
	StatusCode string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// NewApiError constructs an ApiError.
func NewApiError(statusCode, message string, httpStatus int) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message, HTTPStatus: httpStatus}
}

// NewInvalidArgument reports a validation failure (400 INVALID_ARGUMENT).
func NewInvalidArgument(message string) error {
	return NewApiError(StatusInvalidArgument, message, http.StatusBadRequest)
}

// NewUnauthorized reports an authentication failure (401 UNAUTHORIZED).
func NewUnauthorized(message string) error {
	return NewApiError(StatusUnauthorized, message, http.StatusUnauthorized)
}

// NewNotFound reports a missing resource (404 UNKNOWN_ERROR).
func NewNotFound(message string) error {
	return NewApiError(StatusUnknownError, message, http.StatusNotFound)
}

// NewBusinessRule reports a domain rule violation such as a uniqueness
// conflict (400 UNKNOWN_ERROR).
func NewBusinessRule(message string) error {
	return NewApiError(StatusUnknownError, message, http.StatusBadRequest)
}

// NewSystemError wraps an unexpected fault (500 SYSTEM_ERROR). The original
// error is kept for logging but never reaches the response body.
func NewSystemError(err error) error {
	return &ApiError{
		StatusCode: StatusSystemError,
		Message:    "System error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToAPIError classifies any error into an ApiError. Persistence faults map to
// DATABASE_ERROR, everything unrecognized to SYSTEM_ERROR; internal detail is
// retained on Err but hidden from the client-facing message.
func ToAPIError(err error) *ApiError {
	if err == nil {
		return nil
	}

	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) || errors.Is(err, pgx.ErrNoRows) {
		return &ApiError{
			StatusCode: StatusDatabaseError,
			Message:    "Database error",
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}

	if se, ok := NewSystemError(err).(*ApiError); ok {
		return se
	}
	return &ApiError{
		StatusCode: StatusSystemError,
		Message:    "System error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
