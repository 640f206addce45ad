package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// newTestStore starts a throwaway PostgreSQL container and returns a
// migrated store connected to it.
func newTestStore(t *testing.T) *sqldb.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres store tests need Docker")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "desk",
				"POSTGRES_PASSWORD": "desk",
				"POSTGRES_DB":       "desk",
			},
			// The server restarts once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	s, err := NewStore(fmt.Sprintf("postgres://desk:desk@%s:%s/desk?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations(), "migrations are idempotent")
	return s
}

func newAppUser(userID string) domain.AppUser {
	return domain.AppUser{
		ID:     idx.New().String(),
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   userID,
	}
}

func seedClient(t *testing.T, s store.Store, userID, name string) domain.Client {
	t.Helper()
	now := time.Now().UTC()
	c := domain.Client{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Clients().CreateClient(context.Background(), c))
	return c
}

func expiry(t *testing.T) time.Time {
	t.Helper()
	d, err := domain.ParseDate("2025-01-01")
	require.NoError(t, err)
	return d
}

func TestConcurrentFirstUsersYieldOneAdmin(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	const workers = 16
	roles := make([]domain.Role, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			u, err := s.AppUsers().CreateWithDerivedRole(ctx, newAppUser(fmt.Sprintf("user-%d", i)))
			roles[i], errs[i] = u.Role, err
		}(i)
	}
	close(start)
	wg.Wait()

	admins := 0
	for i := range workers {
		require.NoError(t, errs[i])
		if roles[i] == domain.RoleAdmin {
			admins++
		}
	}
	require.Equal(t, 1, admins)

	users, err := s.AppUsers().ListAppUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, workers)
}

func TestDuplicateUserIDAlreadyExists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("alice"))
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, first.Role)

	_, err = s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("alice"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.AppUsers().CountAppUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestDeleteClientCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := seedClient(t, s, "alice", "acme")
	other := seedClient(t, s, "alice", "other")

	for i, clientID := range []string{c.ID, c.ID, other.ID} {
		require.NoError(t, s.Domains().CreateDomain(ctx, domain.Domain{
			ID:             idx.New().String(),
			UserID:         "alice",
			ClientID:       clientID,
			DomainName:     fmt.Sprintf("d%d.com", i),
			ExpirationDate: expiry(t),
			Status:         domain.StatusActive,
		}))
		require.NoError(t, s.Hosting().CreateHosting(ctx, domain.Hosting{
			ID:             idx.New().String(),
			UserID:         "alice",
			ClientID:       clientID,
			ServiceName:    fmt.Sprintf("h%d", i),
			ExpirationDate: expiry(t),
			Status:         domain.StatusActive,
		}))
	}

	require.ErrorIs(t, s.Clients().DeleteClient(ctx, "bob", c.ID), store.ErrNotFound)
	require.NoError(t, s.Clients().DeleteClient(ctx, "alice", c.ID))

	domains, err := s.Domains().ListDomains(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, domains, 1)
	require.Equal(t, other.ID, domains[0].ClientID)

	hosting, err := s.Hosting().ListHosting(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, hosting, 1)
	require.Equal(t, other.ID, hosting[0].ClientID)
}

func TestCreateUnderMissingClientIsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Domains().CreateDomain(ctx, domain.Domain{
		ID:             idx.New().String(),
		UserID:         "alice",
		ClientID:       "missing",
		DomainName:     "x.com",
		ExpirationDate: expiry(t),
		Status:         domain.StatusActive,
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Hosting().CreateHosting(ctx, domain.Hosting{
		ID:             idx.New().String(),
		UserID:         "alice",
		ClientID:       "missing",
		ServiceName:    "vps",
		ExpirationDate: expiry(t),
		Status:         domain.StatusActive,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}
