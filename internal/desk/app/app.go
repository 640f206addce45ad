package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/clientdesk/internal/desk/http"
	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time via -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application encapsulates the desk service with all its dependencies
type Application struct {
	cfg      Config
	logger   *slog.Logger
	location *time.Location

	// Core dependencies
	db    store.Store
	keys  *AuthKeys
	redis *redis.Client // nil unless REDIS_URL is set

	// Services
	clientService    *service.ClientService
	domainService    *service.DomainService
	hostingService   *service.HostingService
	userService      *service.UserService
	dashboardService *service.DashboardService
	expiryMonitor    *service.ExpiryMonitor

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "desk-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	app.location = loc

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	keys, err := InitAuthKeys(ctx, app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize auth keys: %w", err)
	}
	app.keys = keys

	if err := app.initRedis(ctx); err != nil {
		app.keys.Stop()
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.expiryMonitor.Start()

	app.logger.Info("desk service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"auth_mode", app.cfg.AuthMode,
		"timezone", app.location.String(),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down desk service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.expiryMonitor.Stop()
	app.keys.Stop()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("desk service stopped")
	return nil
}

// initDatabase opens the store selected by DATABASE_URL and applies migrations
func (app *Application) initDatabase() error {
	db, err := drivers.Open(app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initRedis connects the shared rate limit backend when configured. An
// unreachable server is not fatal: limiter calls fail open.
func (app *Application) initRedis(ctx context.Context) error {
	if app.cfg.RedisURL == "" {
		app.logger.Info("rate limiting with in-process buckets")
		return nil
	}

	opts, err := redis.ParseURL(app.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	app.redis = redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := app.redis.Ping(pingCtx).Err(); err != nil {
		app.logger.Warn("redis unreachable, rate limits will fail open until it recovers", "error", err)
	} else {
		app.logger.Info("rate limiting with redis", "addr", opts.Addr)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	clock := service.Clock{Location: app.location}

	app.clientService = &service.ClientService{Store: app.db, Clock: clock}
	app.domainService = &service.DomainService{Store: app.db, Clock: clock}
	app.hostingService = &service.HostingService{Store: app.db, Clock: clock}
	app.userService = &service.UserService{Store: app.db, Clock: clock}
	app.dashboardService = &service.DashboardService{
		Store: app.db,
		Users: app.userService,
		Clock: clock,
	}

	app.expiryMonitor = service.NewExpiryMonitor(
		app.db,
		app.logger,
		app.cfg.ExpiryScanInterval,
		app.location,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.Verifier,
		app.keys.Keys,
		BuildVersion,
		app.db,
		app.logger,
	)

	if app.redis != nil {
		router.Limiter = &httpx.RateLimiter{New: httpx.RedisLimiterFactory(app.redis)}
	}
	router.DevKeys = app.keys.Dev // nil in jwks mode

	// Wire services to router
	router.ClientService = app.clientService
	router.DomainService = app.domainService
	router.HostingService = app.hostingService
	router.UserService = app.userService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
