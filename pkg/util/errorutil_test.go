package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestToAPIErrorNil(t *testing.T) {
	require.Nil(t, ToAPIError(nil))
}

func TestToAPIErrorPassesThroughApiErrors(t *testing.T) {
	original := NewNotFound("Staff not found")

	classified := ToAPIError(original)
	require.Equal(t, StatusUnknownError, classified.StatusCode)
	require.Equal(t, "Staff not found", classified.Message)
	require.Equal(t, 404, classified.HTTPStatus)

	wrapped := fmt.Errorf("handler: %w", original)
	require.Equal(t, classified, ToAPIError(wrapped), "classification survives wrapping")
}

func TestToAPIErrorClassifiesPostgresFaults(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"pg error", &pgconn.PgError{Code: "23505", Message: "duplicate key"}},
		{"wrapped pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "57P01"})},
		{"no rows", pgx.ErrNoRows},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := ToAPIError(tc.err)
			require.Equal(t, StatusDatabaseError, apiErr.StatusCode)
			require.Equal(t, "Database error", apiErr.Message)
			require.Equal(t, 500, apiErr.HTTPStatus)
			require.ErrorIs(t, apiErr, tc.err, "internal detail retained for logging")
		})
	}
}

func TestToAPIErrorFallsBackToSystemError(t *testing.T) {
	cause := errors.New("connection refused")

	apiErr := ToAPIError(cause)
	require.Equal(t, StatusSystemError, apiErr.StatusCode)
	require.Equal(t, "System error", apiErr.Message)
	require.Equal(t, 500, apiErr.HTTPStatus)
	require.NotContains(t, apiErr.Message, "connection refused", "cause never reaches the message")
	require.ErrorIs(t, apiErr, cause)
}

func TestApiErrorErrorString(t *testing.T) {
	plain := NewBusinessRule("Staff already exists")
	require.Equal(t, "Staff already exists", plain.Error())

	wrapped := NewSystemError(errors.New("boom"))
	require.Equal(t, "System error: boom", wrapped.Error())
}
