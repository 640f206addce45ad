package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqldb.Store {
	t.Helper()

	s, err := NewStore(DSN(filepath.Join(t.TempDir(), "desk.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seedClient(t *testing.T, s store.Store, userID, name string, at time.Time) domain.Client {
	t.Helper()
	c := domain.Client{
		ID:        idx.NewAt(at).String(),
		UserID:    userID,
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, s.Clients().CreateClient(context.Background(), c))
	return c
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestClientsCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	older := seedClient(t, s, "alice", "older", base)
	newer := seedClient(t, s, "alice", "newer", base.Add(time.Hour))
	seedClient(t, s, "bob", "bobs", base)

	list, err := s.Clients().ListClients(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, newer.ID, list[0].ID, "newest first")
	require.Equal(t, older.ID, list[1].ID)
	require.Equal(t, base, list[1].CreatedAt)
	require.Empty(t, list[1].Phone)

	n, err := s.Clients().CountClients(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	got, err := s.Clients().GetClient(ctx, "alice", older.ID)
	require.NoError(t, err)
	require.Equal(t, "older@example.com", got.Email)

	_, err = s.Clients().GetClient(ctx, "bob", older.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	older.Name = "renamed"
	older.Company = "Acme"
	older.Phone = "555"
	older.UpdatedAt = base.Add(2 * time.Hour)
	updated, err := s.Clients().UpdateClient(ctx, older)
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Name)
	require.Equal(t, "Acme", updated.Company)
	require.Equal(t, "555", updated.Phone)
	require.Equal(t, base, updated.CreatedAt)
	require.Equal(t, base.Add(2*time.Hour), updated.UpdatedAt)

	foreign := older
	foreign.UserID = "bob"
	_, err = s.Clients().UpdateClient(ctx, foreign)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Clients().DeleteClient(ctx, "bob", older.ID), store.ErrNotFound)
	require.NoError(t, s.Clients().DeleteClient(ctx, "alice", older.ID))
	require.ErrorIs(t, s.Clients().DeleteClient(ctx, "alice", older.ID), store.ErrNotFound)
}

func TestDeleteClientCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	c := seedClient(t, s, "alice", "acme", now)
	other := seedClient(t, s, "alice", "other", now)

	for i, clientID := range []string{c.ID, c.ID, other.ID} {
		require.NoError(t, s.Domains().CreateDomain(ctx, domain.Domain{
			ID:             idx.New().String(),
			UserID:         "alice",
			ClientID:       clientID,
			DomainName:     fmt.Sprintf("d%d.com", i),
			ExpirationDate: mustDate(t, "2025-01-01"),
			Status:         domain.StatusActive,
		}))
		require.NoError(t, s.Hosting().CreateHosting(ctx, domain.Hosting{
			ID:             idx.New().String(),
			UserID:         "alice",
			ClientID:       clientID,
			ServiceName:    fmt.Sprintf("h%d", i),
			ExpirationDate: mustDate(t, "2025-01-01"),
			Status:         domain.StatusActive,
		}))
	}

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

func TestDomainRequiresExistingClient(t *testing.T) {
	s := newTestStore(t)

	err := s.Domains().CreateDomain(context.Background(), domain.Domain{
		ID:             idx.New().String(),
		UserID:         "alice",
		ClientID:       "missing",
		DomainName:     "x.com",
		ExpirationDate: mustDate(t, "2025-01-01"),
		Status:         domain.StatusActive,
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Hosting().CreateHosting(context.Background(), domain.Hosting{
		ID:             idx.New().String(),
		UserID:         "alice",
		ClientID:       "missing",
		ServiceName:    "vps",
		ExpirationDate: mustDate(t, "2025-01-01"),
		Status:         domain.StatusActive,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDomainsAndHostingUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	c := seedClient(t, s, "alice", "acme", time.Now())
	d := domain.Domain{
		ID:             idx.New().String(),
		UserID:         "alice",
		ClientID:       c.ID,
		DomainName:     "acme.com",
		Registrar:      "Namecheap",
		ExpirationDate: mustDate(t, "2025-01-01"),
		Status:         domain.StatusActive,
	}
	require.NoError(t, s.Domains().CreateDomain(ctx, d))

	d.DomainName = "acme.io"
	d.Registrar = ""
	d.DNSProvider = "Cloudflare"
	d.Status = domain.StatusExpired
	d.ExpirationDate = mustDate(t, "2023-12-31")
	got, err := s.Domains().UpdateDomain(ctx, d)
	require.NoError(t, err)
	require.Equal(t, "acme.io", got.DomainName)
	require.Empty(t, got.Registrar)
	require.Equal(t, "Cloudflare", got.DNSProvider)
	require.Equal(t, domain.StatusExpired, got.Status)
	require.Equal(t, "2023-12-31", domain.FormatDate(got.ExpirationDate))

	require.ErrorIs(t, s.Domains().DeleteDomain(ctx, "bob", d.ID), store.ErrNotFound)
	require.NoError(t, s.Domains().DeleteDomain(ctx, "alice", d.ID))

	h := domain.Hosting{
		ID:             idx.New().String(),
		UserID:         "alice",
		ClientID:       c.ID,
		ServiceName:    "VPS",
		Provider:       "Linode",
		PlanType:       "2GB",
		ExpirationDate: mustDate(t, "2025-06-01"),
		Status:         domain.StatusActive,
	}
	require.NoError(t, s.Hosting().CreateHosting(ctx, h))

	h.PlanType = "4GB"
	h.Status = domain.StatusExpiring
	got2, err := s.Hosting().UpdateHosting(ctx, h)
	require.NoError(t, err)
	require.Equal(t, "4GB", got2.PlanType)
	require.Equal(t, "Linode", got2.Provider)
	require.Equal(t, domain.StatusExpiring, got2.Status)

	h.ID = "missing"
	_, err = s.Hosting().UpdateHosting(ctx, h)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListAllOrdersByExpiration(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := seedClient(t, s, "alice", "a", time.Now())
	b := seedClient(t, s, "bob", "b", time.Now())

	for _, tc := range []struct {
		owner, client, name, exp string
	}{
		{"alice", a.ID, "late.com", "2026-01-01"},
		{"bob", b.ID, "early.com", "2024-01-01"},
		{"alice", a.ID, "mid.com", "2025-01-01"},
	} {
		require.NoError(t, s.Domains().CreateDomain(ctx, domain.Domain{
			ID:             idx.New().String(),
			UserID:         tc.owner,
			ClientID:       tc.client,
			DomainName:     tc.name,
			ExpirationDate: mustDate(t, tc.exp),
			Status:         domain.StatusActive,
		}))
	}

	all, err := s.Domains().ListAllDomains(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "early.com", all[0].DomainName)
	require.Equal(t, "mid.com", all[1].DomainName)
	require.Equal(t, "late.com", all[2].DomainName)

	hosting, err := s.Hosting().ListAllHosting(ctx)
	require.NoError(t, err)
	require.Empty(t, hosting)
}

func newAppUser(userID string) domain.AppUser {
	return domain.AppUser{
		ID:     idx.New().String(),
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   userID,
	}
}

func TestCreateWithDerivedRole(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("alice"))
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, first.Role)

	second, err := s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("bob"))
	require.NoError(t, err)
	require.Equal(t, domain.RoleStandard, second.Role)

	_, err = s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("alice"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.AppUsers().GetAppUserByUserID(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, second.ID, got.ID)
	require.Equal(t, domain.RoleStandard, got.Role)

	_, err = s.AppUsers().GetAppUserByUserID(ctx, "carol")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.AppUsers().CountAppUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestCreateWithDerivedRoleInsideTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.AppUsers().CreateWithDerivedRole(ctx, newAppUser("alice"))
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, u.Role)
		return fmt.Errorf("abort")
	})
	require.EqualError(t, err, "abort")

	n, err := s.AppUsers().CountAppUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "rolled back")
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

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("alice"))
	require.NoError(t, err)
	bob, err := s.AppUsers().CreateWithDerivedRole(ctx, newAppUser("bob"))
	require.NoError(t, err)

	updated, err := s.AppUsers().UpdateRole(ctx, bob.ID, domain.RoleAdmin)
	require.NoError(t, err)
	require.True(t, updated.IsAdmin())
	require.Equal(t, "bob", updated.UserID)

	byID, err := s.AppUsers().GetAppUserByID(ctx, bob.ID)
	require.NoError(t, err)
	require.True(t, byID.IsAdmin())

	_, err = s.AppUsers().UpdateRole(ctx, "missing", domain.RoleAdmin)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestNestedTxUnsupported(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tx, err := s.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Tx(ctx)
	require.Error(t, err)
}
