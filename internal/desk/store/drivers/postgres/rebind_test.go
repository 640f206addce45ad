package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestRebindQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"none", "SELECT 1", "SELECT 1"},
		{"ordered", "UPDATE t SET a = ?, b = ? WHERE id = ?", "UPDATE t SET a = $1, b = $2 WHERE id = $3"},
		{"literal", "SELECT '?' FROM t WHERE id = ?", "SELECT '?' FROM t WHERE id = $1"},
		{"comment", "-- name: X ?\nSELECT ?", "-- name: X ?\nSELECT $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RebindQuery(tt.in))
		})
	}
}

func TestConstraintCodes(t *testing.T) {
	require.False(t, isUniqueViolation(nil))
	require.False(t, isForeignKeyViolation(nil))

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	require.True(t, isUniqueViolation(unique))
	require.False(t, isForeignKeyViolation(unique))

	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	require.True(t, isForeignKeyViolation(fk))
	require.False(t, isUniqueViolation(fk))
}
