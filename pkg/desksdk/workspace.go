package desksdk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

// Backend is the part of Session the workspace needs.
type Backend interface {
	SetToken(token string)
	StartSession(ctx context.Context) (*SessionResponse, error)

	ListClients(ctx context.Context, q ClientQuery) ([]Client, error)
	CreateClient(ctx context.Context, req ClientRequest) (*Client, error)
	UpdateClient(ctx context.Context, id string, req ClientRequest) (*Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListDomains(ctx context.Context, q string) ([]Domain, error)
	CreateDomain(ctx context.Context, req DomainRequest) (*Domain, error)
	UpdateDomain(ctx context.Context, id string, req DomainRequest) (*Domain, error)
	DeleteDomain(ctx context.Context, id string) error

	ListHosting(ctx context.Context, q string) ([]Hosting, error)
	CreateHosting(ctx context.Context, req HostingRequest) (*Hosting, error)
	UpdateHosting(ctx context.Context, id string, req HostingRequest) (*Hosting, error)
	DeleteHosting(ctx context.Context, id string) error

	ListUsers(ctx context.Context, q string) ([]User, error)
	SetUserRole(ctx context.Context, id, role string) (*User, error)
}

var _ Backend = (*Session)(nil)

type AuthEventKind int

const (
	SignedIn AuthEventKind = iota + 1
	TokenRefreshed
	SignedOut
)

func (k AuthEventKind) String() string {
	switch k {
	case SignedIn:
		return "signed_in"
	case TokenRefreshed:
		return "token_refreshed"
	case SignedOut:
		return "signed_out"
	default:
		return fmt.Sprintf("auth_event(%d)", int(k))
	}
}

// AuthEvent is a change reported by the identity provider.
type AuthEvent struct {
	Kind    AuthEventKind
	Token   string // bearer token, empty on sign-out
	Subject string // identity the token belongs to
}

// Workspace holds the signed-in user's view of the service. Collections are
// replaced by loads and patched by mutations, and only ever after the
// service accepted the change.
type Workspace struct {
	api    Backend
	logger *slog.Logger

	// Now and Location drive expiration classification; they default to
	// time.Now and UTC.
	Now      func() time.Time
	Location *time.Location

	mu         sync.RWMutex
	generation uint64 // bumped on identity change; stale loads are dropped
	subject    string
	signedIn   bool
	user       *User
	warning    string
	clients    []Client
	domains    []Domain
	hosting    []Hosting
	users      []User
}

func NewWorkspace(api Backend, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{api: api, logger: logger}
}

// HandleAuthEvent reacts to the identity provider. Signing in (or a refresh
// that changes identity) starts the session and loads every collection;
// a refresh for the same identity only swaps the token; signing out clears
// everything.
func (w *Workspace) HandleAuthEvent(ctx context.Context, ev AuthEvent) error {
	switch ev.Kind {
	case SignedOut:
		w.api.SetToken("")
		w.mu.Lock()
		w.generation++
		w.reset()
		w.mu.Unlock()
		w.logger.Info("workspace signed out")
		return nil

	case SignedIn, TokenRefreshed:
		w.api.SetToken(ev.Token)

		w.mu.Lock()
		if w.signedIn && ev.Subject != "" && ev.Subject == w.subject {
			w.mu.Unlock()
			return nil
		}
		w.generation++
		w.reset()
		w.signedIn = true
		w.subject = ev.Subject
		gen := w.generation
		w.mu.Unlock()

		w.startSession(ctx, gen)
		w.load(ctx, gen)
		return nil

	default:
		return fmt.Errorf("desksdk: unknown auth event %v", ev.Kind)
	}
}

func (w *Workspace) reset() {
	w.signedIn = false
	w.subject = ""
	w.user = nil
	w.warning = ""
	w.clients = nil
	w.domains = nil
	w.hosting = nil
	w.users = nil
}

// startSession runs the role bootstrap. Failures leave the workspace
// without a role record.
func (w *Workspace) startSession(ctx context.Context, gen uint64) {
	resp, err := w.api.StartSession(ctx)
	if err != nil {
		w.logger.Error("failed to start session", "error", err)
		return
	}
	if resp.Warning != "" {
		w.logger.Warn("session started with warning", "warning", resp.Warning)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return
	}
	w.user = resp.User
	w.warning = resp.Warning
}

// Reload fetches every collection again.
func (w *Workspace) Reload(ctx context.Context) error {
	w.mu.RLock()
	signedIn, gen := w.signedIn, w.generation
	w.mu.RUnlock()
	if !signedIn {
		return ErrNotSignedIn
	}
	w.load(ctx, gen)
	return nil
}

// load fetches all collections concurrently. A failed read is logged and
// leaves that collection as it was.
func (w *Workspace) load(ctx context.Context, gen uint64) {
	var wg sync.WaitGroup

	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				w.logger.Error("failed to load "+name, "error", err)
			}
		}()
	}

	run("clients", func() error {
		clients, err := w.api.ListClients(ctx, ClientQuery{})
		if err == nil {
			w.apply(gen, func() { w.clients = clients })
		}
		return err
	})
	run("domains", func() error {
		domains, err := w.api.ListDomains(ctx, "")
		if err == nil {
			w.apply(gen, func() { w.domains = domains })
		}
		return err
	})
	run("hosting", func() error {
		hosting, err := w.api.ListHosting(ctx, "")
		if err == nil {
			w.apply(gen, func() { w.hosting = hosting })
		}
		return err
	})
	run("users", func() error {
		users, err := w.api.ListUsers(ctx, "")
		if err == nil {
			w.apply(gen, func() { w.users = users })
		}
		return err
	})

	wg.Wait()
}

func (w *Workspace) apply(gen uint64, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen == w.generation {
		fn()
	}
}

// ============================================================================
// Session state
// ============================================================================

func (w *Workspace) SignedIn() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.signedIn
}

// User returns the caller's role record, or nil when there is none.
func (w *Workspace) User() *User {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.user == nil {
		return nil
	}
	u := *w.user
	return &u
}

// IsAdmin gates admin-only views. The service enforces the same rule.
func (w *Workspace) IsAdmin() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.user != nil && w.user.IsAdmin()
}

// Warning returns the role setup warning of the current session, if any.
func (w *Workspace) Warning() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.warning
}

// ============================================================================
// Mutations
// ============================================================================

// activeGeneration returns the session a mutation starts in. Results are
// applied only if that session is still current when the request returns.
func (w *Workspace) activeGeneration() (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.signedIn {
		return 0, ErrNotSignedIn
	}
	return w.generation, nil
}

func (w *Workspace) CreateClient(ctx context.Context, req ClientRequest) (Client, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return Client{}, err
	}
	if errs := req.Validate(); errs != nil {
		return Client{}, validationError(errs)
	}

	c, err := w.api.CreateClient(ctx, req)
	if err != nil {
		w.logger.Error("failed to create client", "error", err)
		return Client{}, err
	}

	w.apply(gen, func() {
		w.clients = slices.Insert(w.clients, 0, *c)
	})
	return *c, nil
}

func (w *Workspace) UpdateClient(ctx context.Context, id string, req ClientRequest) (Client, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return Client{}, err
	}
	if errs := req.Validate(); errs != nil {
		return Client{}, validationError(errs)
	}

	c, err := w.api.UpdateClient(ctx, id, req)
	if err != nil {
		w.logger.Error("failed to update client", "error", err, "client_id", id)
		return Client{}, err
	}

	w.apply(gen, func() {
		replaceByID(w.clients, *c, func(x Client) string { return x.ID })
		for i := range w.domains {
			if w.domains[i].ClientID == c.ID {
				w.domains[i].ClientName = c.Name
			}
		}
		for i := range w.hosting {
			if w.hosting[i].ClientID == c.ID {
				w.hosting[i].ClientName = c.Name
			}
		}
	})
	return *c, nil
}

// DeleteClient removes the client and, mirroring the service, every domain
// and hosting record that belonged to it.
func (w *Workspace) DeleteClient(ctx context.Context, id string) error {
	gen, err := w.activeGeneration()
	if err != nil {
		return err
	}

	if err := w.api.DeleteClient(ctx, id); err != nil {
		w.logger.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	w.apply(gen, func() {
		w.clients = slices.DeleteFunc(w.clients, func(c Client) bool { return c.ID == id })
		w.domains = slices.DeleteFunc(w.domains, func(d Domain) bool { return d.ClientID == id })
		w.hosting = slices.DeleteFunc(w.hosting, func(h Hosting) bool { return h.ClientID == id })
	})
	return nil
}

func (w *Workspace) CreateDomain(ctx context.Context, req DomainRequest) (Domain, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return Domain{}, err
	}
	if errs := req.Validate(); errs != nil {
		return Domain{}, validationError(errs)
	}

	d, err := w.api.CreateDomain(ctx, req)
	if err != nil {
		w.logger.Error("failed to create domain", "error", err)
		return Domain{}, err
	}

	w.apply(gen, func() {
		w.domains = slices.Insert(w.domains, 0, *d)
	})
	return *d, nil
}

func (w *Workspace) UpdateDomain(ctx context.Context, id string, req DomainRequest) (Domain, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return Domain{}, err
	}
	if errs := req.Validate(); errs != nil {
		return Domain{}, validationError(errs)
	}

	d, err := w.api.UpdateDomain(ctx, id, req)
	if err != nil {
		w.logger.Error("failed to update domain", "error", err, "domain_id", id)
		return Domain{}, err
	}

	w.apply(gen, func() {
		replaceByID(w.domains, *d, func(x Domain) string { return x.ID })
	})
	return *d, nil
}

func (w *Workspace) DeleteDomain(ctx context.Context, id string) error {
	gen, err := w.activeGeneration()
	if err != nil {
		return err
	}

	if err := w.api.DeleteDomain(ctx, id); err != nil {
		w.logger.Error("failed to delete domain", "error", err, "domain_id", id)
		return err
	}

	w.apply(gen, func() {
		w.domains = slices.DeleteFunc(w.domains, func(d Domain) bool { return d.ID == id })
	})
	return nil
}

func (w *Workspace) CreateHosting(ctx context.Context, req HostingRequest) (Hosting, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return Hosting{}, err
	}
	if errs := req.Validate(); errs != nil {
		return Hosting{}, validationError(errs)
	}

	h, err := w.api.CreateHosting(ctx, req)
	if err != nil {
		w.logger.Error("failed to create hosting", "error", err)
		return Hosting{}, err
	}

	w.apply(gen, func() {
		w.hosting = slices.Insert(w.hosting, 0, *h)
	})
	return *h, nil
}

func (w *Workspace) UpdateHosting(ctx context.Context, id string, req HostingRequest) (Hosting, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return Hosting{}, err
	}
	if errs := req.Validate(); errs != nil {
		return Hosting{}, validationError(errs)
	}

	h, err := w.api.UpdateHosting(ctx, id, req)
	if err != nil {
		w.logger.Error("failed to update hosting", "error", err, "hosting_id", id)
		return Hosting{}, err
	}

	w.apply(gen, func() {
		replaceByID(w.hosting, *h, func(x Hosting) string { return x.ID })
	})
	return *h, nil
}

func (w *Workspace) DeleteHosting(ctx context.Context, id string) error {
	gen, err := w.activeGeneration()
	if err != nil {
		return err
	}

	if err := w.api.DeleteHosting(ctx, id); err != nil {
		w.logger.Error("failed to delete hosting", "error", err, "hosting_id", id)
		return err
	}

	w.apply(gen, func() {
		w.hosting = slices.DeleteFunc(w.hosting, func(h Hosting) bool { return h.ID == id })
	})
	return nil
}

// SetUserRole changes another user's role. It is refused locally for
// non-admins and for the caller's own record.
func (w *Workspace) SetUserRole(ctx context.Context, id, role string) (User, error) {
	gen, err := w.activeGeneration()
	if err != nil {
		return User{}, err
	}
	if errs := (RoleRequest{Role: role}).Validate(); errs != nil {
		return User{}, validationError(errs)
	}

	w.mu.RLock()
	self := w.user
	w.mu.RUnlock()
	if self == nil || !self.IsAdmin() {
		return User{}, ErrAdminRequired
	}
	if self.ID == id {
		return User{}, ErrSelfRoleChange
	}

	u, err := w.api.SetUserRole(ctx, id, role)
	if err != nil {
		w.logger.Error("failed to update role", "error", err, "target_id", id)
		return User{}, err
	}

	w.apply(gen, func() {
		replaceByID(w.users, *u, func(x User) string { return x.ID })
	})
	return *u, nil
}

func replaceByID[T any](items []T, v T, id func(T) string) {
	for i := range items {
		if id(items[i]) == id(v) {
			items[i] = v
			return
		}
	}
}

// ============================================================================
// Views
// ============================================================================

func (w *Workspace) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Clients returns the clients matching q, newest first.
func (w *Workspace) Clients(q ClientQuery) []Client {
	w.mu.RLock()
	defer w.mu.RUnlock()

	filter := domain.ClientFilter{Query: q.Query, Company: q.Company}
	var out []Client
	for _, c := range w.clients {
		if filter.Match(c.toDomain()) {
			out = append(out, c)
		}
	}
	return out
}

// Domains returns the domains matching q on the domain name or the client
// name, classified as of now.
func (w *Workspace) Domains(q string) []Domain {
	w.mu.RLock()
	defer w.mu.RUnlock()

	now, names := w.now(), w.clientNames()
	var out []Domain
	for _, d := range w.domains {
		name := domain.ClientName(names, d.ClientID)
		if !domain.MatchDomain(q, d.toDomain(), name) {
			continue
		}
		d.ClientName = name
		d.Expiration = ExpirationFor(d.ExpirationDate, now, w.Location)
		out = append(out, d)
	}
	return out
}

// Hosting returns the hosting services matching q on the service name or
// the client name, classified as of now.
func (w *Workspace) Hosting(q string) []Hosting {
	w.mu.RLock()
	defer w.mu.RUnlock()

	now, names := w.now(), w.clientNames()
	var out []Hosting
	for _, h := range w.hosting {
		name := domain.ClientName(names, h.ClientID)
		if !domain.MatchHosting(q, h.toDomain(), name) {
			continue
		}
		h.ClientName = name
		h.Expiration = ExpirationFor(h.ExpirationDate, now, w.Location)
		out = append(out, h)
	}
	return out
}

// Users returns the visible users matching q on name or email.
func (w *Workspace) Users(q string) []User {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []User
	for _, u := range w.users {
		if domain.MatchUser(q, u.toDomain()) {
			out = append(out, u)
		}
	}
	return out
}

func (w *Workspace) clientNames() map[string]string {
	names := make(map[string]string, len(w.clients))
	for _, c := range w.clients {
		names[c.ID] = c.Name
	}
	return names
}

// Stats computes the dashboard counters from the loaded collections.
func (w *Workspace) Stats() DashboardResponse {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ds := make([]domain.Service, len(w.domains))
	for i, d := range w.domains {
		ds[i] = d.toDomain().Service()
	}
	hs := make([]domain.Service, len(w.hosting))
	for i, h := range w.hosting {
		hs[i] = h.toDomain().Service()
	}

	stats := domain.ComputeStats(len(w.clients), ds, hs, w.now(), w.Location)
	if w.user != nil && w.user.IsAdmin() {
		n := len(w.users)
		stats.TotalUsers = &n
	}
	return DashboardFromStats(stats)
}

// ExportCSV writes the loaded clients as CSV and returns the file name to
// save it under.
func (w *Workspace) ExportCSV(out io.Writer) (string, error) {
	w.mu.RLock()
	clients := make([]domain.Client, len(w.clients))
	for i, c := range w.clients {
		clients[i] = c.toDomain()
	}
	w.mu.RUnlock()

	if err := domain.WriteClientsCSV(out, clients); err != nil {
		return "", err
	}

	return domain.ExportFilename(w.now()), nil
}
