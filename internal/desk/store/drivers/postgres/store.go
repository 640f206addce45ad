package postgres

import (
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Dialect is the sqldb dialect for PostgreSQL. The shared queries use "?"
// placeholders and are rebound to $n before reaching pgx.
var Dialect = sqldb.Dialect{
	Name: "postgres",
	Wrap: Rebind,

	// Readers still see the table; concurrent role derivations queue up so
	// only the first can observe it empty.
	LockAppUsers:          `LOCK TABLE app_users IN SHARE ROW EXCLUSIVE MODE`,
	IsUniqueViolation:     isUniqueViolation,
	IsForeignKeyViolation: isForeignKeyViolation,
	Migrate:               migrateUp,
}

// NewStore opens a pgx-backed pool for the given postgres:// URL.
func NewStore(dsn string) (*sqldb.Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return sqldb.New(db, Dialect), nil
}

func isUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
