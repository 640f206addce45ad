// Package sqldb implements store.Store on top of database/sql. The SQL
// dialect specifics (placeholder style, locking, constraint errors and
// migrations) are supplied by the sqlite and postgres drivers.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

// TimeLayout is the fixed-width layout used for every stored timestamp, so
// that lexical order on the TEXT column matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Dialect captures the differences between the supported databases.
type Dialect struct {
	Name string

	// Wrap adapts a connection or transaction before it is handed to the
	// generated queries. Nil means no adaptation.
	Wrap func(gen.DBTX) gen.DBTX

	// LockAppUsers, when set, is executed inside the transaction that
	// derives a new app user's role.
	LockAppUsers string

	IsUniqueViolation func(error) bool

	// IsForeignKeyViolation reports an insert that references a missing row.
	IsForeignKeyViolation func(error) bool

	Migrate func(db *sql.DB) error
}

func (d Dialect) wrap(db gen.DBTX) gen.DBTX {
	if d.Wrap == nil {
		return db
	}
	return d.Wrap(db)
}

func (d Dialect) uniqueViolation(err error) bool {
	return d.IsUniqueViolation != nil && d.IsUniqueViolation(err)
}

// mapMissingParent turns a foreign key failure into store.ErrNotFound.
func (d Dialect) mapMissingParent(err error) error {
	if err != nil && d.IsForeignKeyViolation != nil && d.IsForeignKeyViolation(err) {
		return store.ErrNotFound
	}
	return err
}

type Store struct {
	db      *sql.DB
	dialect Dialect
	q       *gen.Queries
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		q:       gen.New(dialect.wrap(db)),
	}
}

// DB exposes the underlying pool, mainly for tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ApplyMigrations applies any pending embedded migrations for the dialect.
func (s *Store) ApplyMigrations() error {
	if s.dialect.Migrate == nil {
		return fmt.Errorf("sqldb: %s: no migrations", s.dialect.Name)
	}
	return s.dialect.Migrate(s.db)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Clients() store.Clients { return &clientsRepo{q: s.q} }
func (s *Store) Domains() store.Domains { return &domainsRepo{q: s.q, dialect: s.dialect} }
func (s *Store) Hosting() store.Hosting { return &hostingRepo{q: s.q, dialect: s.dialect} }
func (s *Store) AppUsers() store.AppUsers {
	return &appUsersRepo{q: s.q, db: s.db, dialect: s.dialect}
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// formatTime renders t for storage. The zero time is replaced with now.
func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(TimeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		// Rows written by hand (or by older tooling) may use RFC 3339.
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC()
}

func parseDate(s string) time.Time {
	t, _ := domain.ParseDate(s)
	return t
}
