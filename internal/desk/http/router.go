package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/jwtx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"

	_ "github.com/aussiebroadwan/clientdesk/api/desk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// KeyStatus reports whether token verification keys are loaded.
type KeyStatus interface {
	IsReady() bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	keys         KeyStatus
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Limiter backs every rate limit. Nil means in-process buckets.
	Limiter *httpx.RateLimiter

	// DevKeys enables POST /v1/dev/token. Only set in ephemeral auth mode.
	DevKeys *jwtx.KeyManager

	ClientService    *service.ClientService
	DomainService    *service.DomainService
	HostingService   *service.HostingService
	UserService      *service.UserService
	DashboardService *service.DashboardService
}

func NewRouter(
	verifier jwtx.Verifier,
	keys KeyStatus,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerClients()
	r.registerDomains()
	r.registerHosting()
	r.registerUsers()
	r.registerDashboard()
	r.registerDevToken()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Desk API
//	@version		0.1.0
//	@description	Tracks clients and the domains and hosting services they depend on, with expiration
//	@description	classification, role based user management and CSV export.
//	@description
//	@description				Every /v1 endpoint except /v1/dev/token requires a bearer JWT issued by the configured identity provider.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clientdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification and a per-user rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.Limiter.ByUser(limit),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{UserService: r.UserService}

	// POST /v1/session - strict rate limit by user (may write the role record)
	r.Mux.Handle("POST /v1/session", r.secured(h, httpx.StrictLimit))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	r.Mux.Handle("GET /v1/clients", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/clients", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/clients/export", r.secured(http.HandlerFunc(h.HandleExport), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/clients/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/clients/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerDomains() {
	h := &DomainsHandler{DomainService: r.DomainService}

	r.Mux.Handle("GET /v1/domains", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/domains", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/domains/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/domains/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerHosting() {
	h := &HostingHandler{HostingService: r.HostingService}

	r.Mux.Handle("GET /v1/hosting", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/hosting", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/hosting/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/hosting/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))

	// PUT /v1/users/{id}/role - strict: admin-only privilege change
	r.Mux.Handle("PUT /v1/users/{id}/role", r.secured(http.HandlerFunc(h.HandleSetRole), httpx.StrictLimit))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	r.Mux.Handle("GET /v1/dashboard", r.secured(h, httpx.LenientLimit))
}

func (r *Router) registerDevToken() {
	if r.DevKeys == nil {
		return
	}

	// POST /v1/dev/token - strict rate limit by IP (unauthenticated)
	h := &DevTokenHandler{Keys: r.DevKeys}
	r.Mux.Handle("POST /v1/dev/token",
		httpx.Chain(h,
			r.Limiter.ByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.Limiter.ByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			r.Limiter.ByIP(httpx.PublicLimit),
		),
	)
}
