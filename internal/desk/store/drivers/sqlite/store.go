package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb"
	_ "modernc.org/sqlite"
)

// DSN turns a file path into a modernc sqlite DSN with foreign keys enforced
// on every connection. A value that already starts with "file:" is returned
// as is.
func DSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
}

// Dialect is the sqldb dialect for SQLite.
var Dialect = sqldb.Dialect{
	Name:                  "sqlite",
	IsUniqueViolation:     isUniqueViolation,
	IsForeignKeyViolation: isForeignKeyViolation,
	Migrate:               migrateUp,
}

// NewStore opens the database at dsn. SQLite allows a single writer, so the
// pool is limited to one connection and writers queue in database/sql.
func NewStore(dsn string) (*sqldb.Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqldb.New(db, Dialect), nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
