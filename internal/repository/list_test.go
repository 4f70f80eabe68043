package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderClauseDefaultsToNewestFirst(t *testing.T) {
	require.Equal(t, " ORDER BY created_at DESC", orderClause(staffOrderColumns, nil))
}

func TestOrderClauseMapsAPIFieldNames(t *testing.T) {
	clause := orderClause(staffOrderColumns, &OrderBy{Field: "createdAt", Direction: "asc"})
	require.Equal(t, " ORDER BY created_at ASC", clause)

	clause = orderClause(enquiryOrderColumns, &OrderBy{Field: "updatedAt", Direction: "desc"})
	require.Equal(t, " ORDER BY updated_at DESC", clause)
}

func TestOrderClauseFallsBackOnUnknownField(t *testing.T) {
	clause := orderClause(staffOrderColumns, &OrderBy{Field: "password_hash", Direction: "asc"})
	require.Equal(t, " ORDER BY created_at ASC", clause)
}
