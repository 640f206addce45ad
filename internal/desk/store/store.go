package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories per table; transactions are
// only started from the root so they cannot nest.
type Store interface {
	Clients() Clients
	Domains() Domains
	Hosting() Hosting
	AppUsers() AppUsers

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Clients are always scoped to the owning identity (userID).
type Clients interface {
	CreateClient(ctx context.Context, c domain.Client) error

	// GetClient returns ErrNotFound for missing or foreign clients.
	GetClient(ctx context.Context, userID, id string) (domain.Client, error)

	// ListClients returns the owner's clients, newest first.
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)

	// UpdateClient replaces the editable fields and returns the stored row.
	UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error)

	// DeleteClient removes the client. Its domains and hosting go with it
	// (ON DELETE CASCADE).
	DeleteClient(ctx context.Context, userID, id string) error

	CountClients(ctx context.Context, userID string) (int, error)
}

type Domains interface {
	CreateDomain(ctx context.Context, d domain.Domain) error
	ListDomains(ctx context.Context, userID string) ([]domain.Domain, error)

	// ListAllDomains spans every owner, soonest expiration first.
	ListAllDomains(ctx context.Context) ([]domain.Domain, error)

	UpdateDomain(ctx context.Context, d domain.Domain) (domain.Domain, error)
	DeleteDomain(ctx context.Context, userID, id string) error
}

type Hosting interface {
	CreateHosting(ctx context.Context, h domain.Hosting) error
	ListHosting(ctx context.Context, userID string) ([]domain.Hosting, error)

	// ListAllHosting spans every owner, soonest expiration first.
	ListAllHosting(ctx context.Context) ([]domain.Hosting, error)

	UpdateHosting(ctx context.Context, h domain.Hosting) (domain.Hosting, error)
	DeleteHosting(ctx context.Context, userID, id string) error
}

type AppUsers interface {
	GetAppUserByID(ctx context.Context, id string) (domain.AppUser, error)
	GetAppUserByUserID(ctx context.Context, userID string) (domain.AppUser, error)

	// CreateWithDerivedRole inserts u with role admin when the table is empty
	// and standard otherwise, decided atomically by the database. u.Role is
	// ignored; the returned user carries the assigned role. Returns
	// ErrAlreadyExists when the identity already has a record.
	CreateWithDerivedRole(ctx context.Context, u domain.AppUser) (domain.AppUser, error)

	ListAppUsers(ctx context.Context) ([]domain.AppUser, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (domain.AppUser, error)
	CountAppUsers(ctx context.Context) (int, error)
}
