package sqldb

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
)

type txStore struct {
	tx      *sql.Tx
	dialect Dialect
	q       *gen.Queries
}

func newTx(tx *sql.Tx, dialect Dialect) *txStore {
	return &txStore{
		tx:      tx,
		dialect: dialect,
		q:       gen.New(dialect.wrap(tx)),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Clients() store.Clients { return &clientsRepo{q: t.q} }
func (t *txStore) Domains() store.Domains { return &domainsRepo{q: t.q, dialect: t.dialect} }
func (t *txStore) Hosting() store.Hosting { return &hostingRepo{q: t.q, dialect: t.dialect} }
func (t *txStore) AppUsers() store.AppUsers {
	return &appUsersRepo{q: t.q, tx: t.tx, dialect: t.dialect}
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
