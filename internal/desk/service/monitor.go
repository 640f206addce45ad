package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

// Alert is a service found expiring or expired by a scan.
type Alert struct {
	UserID     string
	Service    domain.Service
	Expiration domain.Expiration
}

// ExpiryMonitor periodically scans every domain and hosting record and logs
// a warning for each one inside the expiring window or past its date. It
// never changes stored status.
type ExpiryMonitor struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Clock

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewExpiryMonitor creates a monitor with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewExpiryMonitor(store store.Store, logger *slog.Logger, interval time.Duration, loc *time.Location) *ExpiryMonitor {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &ExpiryMonitor{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		Clock:    Clock{Location: loc},
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (m *ExpiryMonitor) Start() {
	go m.run()
	m.Logger.Info("expiry monitor started", "interval", m.Interval)
}

// Stop blocks until an in-progress scan has finished.
func (m *ExpiryMonitor) Stop() {
	close(m.stopCh)
	<-m.doneCh
	m.Logger.Info("expiry monitor stopped")
}

func (m *ExpiryMonitor) run() {
	defer close(m.doneCh)

	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	// Scan immediately on startup
	m.Scan(context.Background())

	for {
		select {
		case <-ticker.C:
			m.Scan(context.Background())
		case <-m.stopCh:
			return
		}
	}
}

// Scan classifies every service once and returns the alerts it logged.
// Domains and hosting are read independently; a failure in one does not
// stop the other.
func (m *ExpiryMonitor) Scan(ctx context.Context) []Alert {
	now, loc := m.now(), m.location()
	var alerts []Alert

	check := func(userID string, svc domain.Service) {
		exp := domain.Classify(svc.ExpirationDate, now, loc)
		if exp.Status == domain.StatusActive {
			return
		}
		alerts = append(alerts, Alert{UserID: userID, Service: svc, Expiration: exp})
		m.Logger.Warn("service "+string(exp.Status),
			"kind", svc.Kind,
			"service_id", svc.ID,
			"name", svc.Name,
			"user_id", userID,
			"expiration_date", domain.FormatDate(svc.ExpirationDate),
			"days_left", exp.DaysLeft,
			"stored_status", svc.Status,
		)
	}

	domains, err := m.Store.Domains().ListAllDomains(ctx)
	if err != nil {
		m.Logger.Error("failed to list domains", "error", err)
	}
	for _, d := range domains {
		check(d.UserID, d.Service())
	}

	hosting, err := m.Store.Hosting().ListAllHosting(ctx)
	if err != nil {
		m.Logger.Error("failed to list hosting", "error", err)
	}
	for _, h := range hosting {
		check(h.UserID, h.Service())
	}

	m.Logger.Info("expiry scan completed",
		"domains", len(domains),
		"hosting", len(hosting),
		"alerts", len(alerts),
	)
	return alerts
}
