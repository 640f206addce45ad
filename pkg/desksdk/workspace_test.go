package desksdk

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

// fakeBackend records calls and serves canned collections.
type fakeBackend struct {
	mu sync.Mutex

	token    string
	sessions int
	loads    int

	session    *SessionResponse
	sessionErr error

	clients []Client
	domains []Domain
	hosting []Hosting
	users   []User

	clientsErr error
	mutateErr  error
	deleted    []string
}

func (f *fakeBackend) SetToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *fakeBackend) StartSession(context.Context) (*SessionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions++
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return f.session, nil
}

func (f *fakeBackend) ListClients(context.Context, ClientQuery) ([]Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.clientsErr != nil {
		return nil, f.clientsErr
	}
	return append([]Client(nil), f.clients...), nil
}

func (f *fakeBackend) CreateClient(_ context.Context, req ClientRequest) (*Client, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &Client{ID: "c-new", Name: req.Name, Email: req.Email, Company: req.Company, CreatedAt: testNow}, nil
}

func (f *fakeBackend) UpdateClient(_ context.Context, id string, req ClientRequest) (*Client, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &Client{ID: id, Name: req.Name, Email: req.Email, Company: req.Company}, nil
}

func (f *fakeBackend) DeleteClient(_ context.Context, id string) error {
	return f.remove(id)
}

func (f *fakeBackend) ListDomains(context.Context, string) ([]Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Domain(nil), f.domains...), nil
}

func (f *fakeBackend) CreateDomain(_ context.Context, req DomainRequest) (*Domain, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &Domain{ID: "d-new", ClientID: req.ClientID, DomainName: req.DomainName, ExpirationDate: req.ExpirationDate, Status: "active"}, nil
}

func (f *fakeBackend) UpdateDomain(_ context.Context, id string, req DomainRequest) (*Domain, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &Domain{ID: id, ClientID: req.ClientID, DomainName: req.DomainName, ExpirationDate: req.ExpirationDate, Status: req.Status}, nil
}

func (f *fakeBackend) DeleteDomain(_ context.Context, id string) error {
	return f.remove(id)
}

func (f *fakeBackend) ListHosting(context.Context, string) ([]Hosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Hosting(nil), f.hosting...), nil
}

func (f *fakeBackend) CreateHosting(_ context.Context, req HostingRequest) (*Hosting, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &Hosting{ID: "h-new", ClientID: req.ClientID, ServiceName: req.ServiceName, ExpirationDate: req.ExpirationDate, Status: "active"}, nil
}

func (f *fakeBackend) UpdateHosting(_ context.Context, id string, req HostingRequest) (*Hosting, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &Hosting{ID: id, ClientID: req.ClientID, ServiceName: req.ServiceName, ExpirationDate: req.ExpirationDate, Status: req.Status}, nil
}

func (f *fakeBackend) DeleteHosting(_ context.Context, id string) error {
	return f.remove(id)
}

func (f *fakeBackend) ListUsers(context.Context, string) ([]User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]User(nil), f.users...), nil
}

func (f *fakeBackend) SetUserRole(_ context.Context, id, role string) (*User, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	return &User{ID: id, Role: role}, nil
}

func (f *fakeBackend) remove(id string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.mu.Lock()
	f.deleted = append(f.deleted, id)
	f.mu.Unlock()
	return nil
}

func adminSession() *SessionResponse {
	return &SessionResponse{User: &User{ID: "u1", UserID: "alice", Role: "admin"}, IsAdmin: true}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		session: adminSession(),
		clients: []Client{
			{ID: "c2", Name: "Beta Ltd", Email: "ops@beta.test", Company: "Beta", CreatedAt: testNow},
			{ID: "c1", Name: "Acme", Email: "it@acme.test", Company: "Acme Corp", CreatedAt: testNow.AddDate(0, 0, -3)},
		},
		domains: []Domain{
			{ID: "d1", ClientID: "c1", ClientName: "Acme", DomainName: "acme.test", ExpirationDate: "2024-03-20", Status: "active"},
			{ID: "d2", ClientID: "c2", ClientName: "Beta Ltd", DomainName: "beta.test", ExpirationDate: "2024-01-01", Status: "expired"},
		},
		hosting: []Hosting{
			{ID: "h1", ClientID: "c1", ClientName: "Acme", ServiceName: "Acme VPS", ExpirationDate: "2025-01-01", Status: "active"},
		},
		users: []User{
			{ID: "u1", UserID: "alice", Email: "alice@example.com", Name: "Alice", Role: "admin"},
			{ID: "u2", UserID: "bob", Email: "bob@example.com", Name: "Bob", Role: "standard"},
		},
	}
}

func newTestWorkspace(t *testing.T, api Backend) *Workspace {
	t.Helper()
	ws := NewWorkspace(api, slog.New(slog.DiscardHandler))
	ws.Now = func() time.Time { return testNow }
	return ws
}

func signIn(t *testing.T, ws *Workspace, subject string) {
	t.Helper()
	err := ws.HandleAuthEvent(context.Background(), AuthEvent{Kind: SignedIn, Token: "tok-" + subject, Subject: subject})
	require.NoError(t, err)
}

func TestWorkspaceSignInLoadsEverything(t *testing.T) {
	t.Parallel()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	require.Equal(t, "tok-alice", api.token)
	require.Equal(t, 1, api.sessions)
	require.True(t, ws.SignedIn())
	require.True(t, ws.IsAdmin())
	require.Equal(t, "u1", ws.User().ID)
	require.Len(t, ws.Clients(ClientQuery{}), 2)
	require.Len(t, ws.Domains(""), 2)
	require.Len(t, ws.Hosting(""), 1)
	require.Len(t, ws.Users(""), 2)
}

func TestWorkspaceRefreshSameSubjectKeepsState(t *testing.T) {
	t.Parallel()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	err := ws.HandleAuthEvent(context.Background(), AuthEvent{Kind: TokenRefreshed, Token: "tok-2", Subject: "alice"})
	require.NoError(t, err)
	require.Equal(t, "tok-2", api.token)
	require.Equal(t, 1, api.sessions)
	require.Equal(t, 1, api.loads)
}

func TestWorkspaceRefreshNewSubjectReloads(t *testing.T) {
	t.Parallel()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	api.session = &SessionResponse{User: &User{ID: "u2", UserID: "bob", Role: "standard"}}
	err := ws.HandleAuthEvent(context.Background(), AuthEvent{Kind: TokenRefreshed, Token: "tok-bob", Subject: "bob"})
	require.NoError(t, err)
	require.Equal(t, 2, api.sessions)
	require.Equal(t, 2, api.loads)
	require.False(t, ws.IsAdmin())
	require.Equal(t, "u2", ws.User().ID)
}

func TestWorkspaceSignOutClearsState(t *testing.T) {
	t.Parallel()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	require.NoError(t, ws.HandleAuthEvent(context.Background(), AuthEvent{Kind: SignedOut}))
	require.Empty(t, api.token)
	require.False(t, ws.SignedIn())
	require.False(t, ws.IsAdmin())
	require.Nil(t, ws.User())
	require.Empty(t, ws.Clients(ClientQuery{}))
	require.Empty(t, ws.Domains(""))
	require.Empty(t, ws.Users(""))

	_, err := ws.CreateClient(context.Background(), ClientRequest{Name: "X", Email: "x@example.com"})
	require.ErrorIs(t, err, ErrNotSignedIn)
}

func TestWorkspaceUnknownEvent(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, newFakeBackend())
	require.Error(t, ws.HandleAuthEvent(context.Background(), AuthEvent{Kind: AuthEventKind(42)}))
}

func TestWorkspaceSessionFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	t.Run("request error", func(t *testing.T) {
		api := newFakeBackend()
		api.sessionErr = errors.New("connection refused")
		ws := newTestWorkspace(t, api)
		signIn(t, ws, "alice")

		require.True(t, ws.SignedIn())
		require.Nil(t, ws.User())
		require.False(t, ws.IsAdmin())
		require.Len(t, ws.Clients(ClientQuery{}), 2)
	})

	t.Run("warning", func(t *testing.T) {
		api := newFakeBackend()
		api.session = &SessionResponse{Warning: "Role setup failed; continuing without a role"}
		ws := newTestWorkspace(t, api)
		signIn(t, ws, "alice")

		require.Equal(t, "Role setup failed; continuing without a role", ws.Warning())
		require.Nil(t, ws.User())
	})
}

func TestWorkspaceLoadFailureKeepsCollection(t *testing.T) {
	t.Parallel()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	api.clientsErr = errors.New("boom")
	api.mu.Lock()
	api.domains = api.domains[:1]
	api.mu.Unlock()

	require.NoError(t, ws.Reload(context.Background()))
	require.Len(t, ws.Clients(ClientQuery{}), 2)
	require.Len(t, ws.Domains(""), 1)
}

func TestWorkspaceReloadRequiresSignIn(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, newFakeBackend())
	require.ErrorIs(t, ws.Reload(context.Background()), ErrNotSignedIn)
}

func TestWorkspaceClientMutations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	t.Run("create prepends", func(t *testing.T) {
		c, err := ws.CreateClient(ctx, ClientRequest{Name: "Gamma", Email: "g@gamma.test"})
		require.NoError(t, err)
		require.Equal(t, "c-new", c.ID)
		require.Equal(t, "c-new", ws.Clients(ClientQuery{})[0].ID)
	})

	t.Run("invalid form is rejected locally", func(t *testing.T) {
		_, err := ws.CreateClient(ctx, ClientRequest{Name: "", Email: "nope"})
		require.Error(t, err)
		details := ValidationDetails(err)
		require.Contains(t, details, "name")
		require.Contains(t, details, "email")
		require.Len(t, ws.Clients(ClientQuery{}), 3)
	})

	t.Run("update renames linked services", func(t *testing.T) {
		_, err := ws.UpdateClient(ctx, "c1", ClientRequest{Name: "Acme Pty", Email: "it@acme.test"})
		require.NoError(t, err)

		var found bool
		for _, d := range ws.Domains("") {
			if d.ID == "d1" {
				found = true
				require.Equal(t, "Acme Pty", d.ClientName)
			}
		}
		require.True(t, found)
	})

	t.Run("failed request leaves state", func(t *testing.T) {
		api.mutateErr = &APIError{StatusCode: 500, Code: ErrorCodeServerError}
		defer func() { api.mutateErr = nil }()

		err := ws.DeleteClient(ctx, "c1")
		require.Error(t, err)
		require.Len(t, ws.Clients(ClientQuery{}), 3)
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, ws.DeleteClient(ctx, "c1"))

		for _, c := range ws.Clients(ClientQuery{}) {
			require.NotEqual(t, "c1", c.ID)
		}
		for _, d := range ws.Domains("") {
			require.NotEqual(t, "c1", d.ClientID)
		}
		require.Empty(t, ws.Hosting(""))
		require.Len(t, ws.Domains(""), 1)
	})
}

func TestWorkspaceServiceMutations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	api := newFakeBackend()
	ws := newTestWorkspace(t, api)
	signIn(t, ws, "alice")

	d, err := ws.CreateDomain(ctx, DomainRequest{ClientID: "c1", DomainName: "new.test", ExpirationDate: "2024-03-10"})
	require.NoError(t, err)
	require.Equal(t, "d-new", d.ID)

	domains := ws.Domains("")
	require.Equal(t, "d-new", domains[0].ID)
	require.Equal(t, "Acme", domains[0].ClientName)
	require.Equal(t, "expiring", domains[0].Expiration.Status)
	require.Equal(t, "0 days left", domains[0].Expiration.Text)

	_, err = ws.UpdateDomain(ctx, "d2", DomainRequest{ClientID: "c2", DomainName: "beta.test", ExpirationDate: "2026-01-01", Status: "active"})
	require.NoError(t, err)
	require.Len(t, ws.Domains("beta"), 1)
	require.Equal(t, "active", ws.Domains("beta")[0].Expiration.Status)

	require.NoError(t, ws.DeleteDomain(ctx, "d-new"))
	require.Len(t, ws.Domains(""), 2)

	_, err = ws.CreateDomain(ctx, DomainRequest{ClientID: "c1", DomainName: "x.test", ExpirationDate: "03/10/2024"})
	require.Contains(t, ValidationDetails(err), "expiration_date")

	h, err := ws.CreateHosting(ctx, HostingRequest{ClientID: "c2", ServiceName: "Beta Mail", ExpirationDate: "2024-02-01"})
	require.NoError(t, err)
	require.Equal(t, "expired", ws.Hosting("beta mail")[0].Expiration.Status)

	_, err = ws.UpdateHosting(ctx, h.ID, HostingRequest{ClientID: "c2", ServiceName: "Beta Mail", ExpirationDate: "2024-04-01", Status: "active"})
	require.NoError(t, err)
	require.Equal(t, "22 days left", ws.Hosting("beta mail")[0].Expiration.Text)

	require.NoError(t, ws.DeleteHosting(ctx, h.ID))
	require.Empty(t, ws.Hosting("beta mail"))
	require.Equal(t, []string{"d-new", "h-new"}, api.deleted)
}

func TestWorkspaceSetUserRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("admin changes another user", func(t *testing.T) {
		ws := newTestWorkspace(t, newFakeBackend())
		signIn(t, ws, "alice")

		u, err := ws.SetUserRole(ctx, "u2", "admin")
		require.NoError(t, err)
		require.Equal(t, "admin", u.Role)
		require.Equal(t, "admin", ws.Users("bob")[0].Role)
	})

	t.Run("self change refused", func(t *testing.T) {
		ws := newTestWorkspace(t, newFakeBackend())
		signIn(t, ws, "alice")

		_, err := ws.SetUserRole(ctx, "u1", "standard")
		require.ErrorIs(t, err, ErrSelfRoleChange)
	})

	t.Run("standard user refused", func(t *testing.T) {
		api := newFakeBackend()
		api.session = &SessionResponse{User: &User{ID: "u2", Role: "standard"}}
		ws := newTestWorkspace(t, api)
		signIn(t, ws, "bob")

		_, err := ws.SetUserRole(ctx, "u1", "standard")
		require.ErrorIs(t, err, ErrAdminRequired)
	})

	t.Run("invalid role", func(t *testing.T) {
		ws := newTestWorkspace(t, newFakeBackend())
		signIn(t, ws, "alice")

		_, err := ws.SetUserRole(ctx, "u2", "owner")
		require.Contains(t, ValidationDetails(err), "role")
	})
}

func TestWorkspaceFilters(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, newFakeBackend())
	signIn(t, ws, "alice")

	require.Len(t, ws.Clients(ClientQuery{Query: "ACME"}), 1)
	require.Len(t, ws.Clients(ClientQuery{Query: "beta.test"}), 1)
	require.Len(t, ws.Clients(ClientQuery{Company: "Beta"}), 1)
	require.Empty(t, ws.Clients(ClientQuery{Query: "acme", Company: "Beta"}))

	require.Len(t, ws.Domains("acme"), 1)
	require.Len(t, ws.Domains("beta ltd"), 1)
	require.Empty(t, ws.Domains("nothing"))

	require.Len(t, ws.Users("BOB@"), 1)
}

func TestWorkspaceStats(t *testing.T) {
	t.Parallel()

	t.Run("admin", func(t *testing.T) {
		ws := newTestWorkspace(t, newFakeBackend())
		signIn(t, ws, "alice")

		stats := ws.Stats()
		require.Equal(t, 2, stats.TotalClients)
		require.Equal(t, 1, stats.ActiveDomains)
		require.Equal(t, 1, stats.ActiveHosting)
		require.Equal(t, 1, stats.ExpiringServices)
		require.NotNil(t, stats.TotalUsers)
		require.Equal(t, 2, *stats.TotalUsers)
	})

	t.Run("standard", func(t *testing.T) {
		api := newFakeBackend()
		api.session = &SessionResponse{User: &User{ID: "u2", Role: "standard"}}
		ws := newTestWorkspace(t, api)
		signIn(t, ws, "bob")

		require.Nil(t, ws.Stats().TotalUsers)
	})
}

func TestWorkspaceExportCSV(t *testing.T) {
	t.Parallel()

	ws := newTestWorkspace(t, newFakeBackend())
	signIn(t, ws, "alice")

	var buf bytes.Buffer
	name, err := ws.ExportCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, "clients-export-2024-03-10.csv", name)
	require.Equal(t,
		"Client Name,Email,Company,Phone,Created Date\n"+
			"Beta Ltd,ops@beta.test,Beta,,2024-03-10\n"+
			"Acme,it@acme.test,Acme Corp,,2024-03-07\n",
		buf.String())

	// 01:00 on the 11th in Sydney is still the 10th in UTC.
	ws.Location = time.FixedZone("AEST", 10*60*60)
	name, err = ws.ExportCSV(&bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "clients-export-2024-03-10.csv", name)
}

// blockingBackend holds client mutations until released.
type blockingBackend struct {
	*fakeBackend
	entered chan struct{}
	release chan struct{}
}

func newBlockingBackend() *blockingBackend {
	return &blockingBackend{
		fakeBackend: newFakeBackend(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (b *blockingBackend) CreateClient(ctx context.Context, req ClientRequest) (*Client, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.fakeBackend.CreateClient(ctx, req)
}

func (b *blockingBackend) DeleteClient(ctx context.Context, id string) error {
	b.entered <- struct{}{}
	<-b.release
	return b.fakeBackend.DeleteClient(ctx, id)
}

func TestWorkspaceMutationAcrossIdentityChangeIsDropped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	switchToBob := func(t *testing.T, api *blockingBackend, ws *Workspace) {
		t.Helper()
		<-api.entered
		require.NoError(t, ws.HandleAuthEvent(ctx, AuthEvent{Kind: SignedOut}))
		api.mu.Lock()
		api.session = &SessionResponse{User: &User{ID: "u2", UserID: "bob", Role: "standard"}}
		api.mu.Unlock()
		signIn(t, ws, "bob")
		close(api.release)
	}

	t.Run("create", func(t *testing.T) {
		api := newBlockingBackend()
		ws := newTestWorkspace(t, api)
		signIn(t, ws, "alice")

		done := make(chan error, 1)
		go func() {
			_, err := ws.CreateClient(ctx, ClientRequest{Name: "Alice Co", Email: "a@x.com"})
			done <- err
		}()
		switchToBob(t, api, ws)
		require.NoError(t, <-done)

		require.Equal(t, "u2", ws.User().ID)
		for _, c := range ws.Clients(ClientQuery{}) {
			require.NotEqual(t, "c-new", c.ID)
		}
		require.Len(t, ws.Clients(ClientQuery{}), 2)
	})

	t.Run("delete", func(t *testing.T) {
		api := newBlockingBackend()
		ws := newTestWorkspace(t, api)
		signIn(t, ws, "alice")

		done := make(chan error, 1)
		go func() { done <- ws.DeleteClient(ctx, "c1") }()
		switchToBob(t, api, ws)
		require.NoError(t, <-done)

		require.Len(t, ws.Clients(ClientQuery{}), 2)
		require.Len(t, ws.Domains(""), 2)
		require.Len(t, ws.Hosting(""), 1)
	})
}
