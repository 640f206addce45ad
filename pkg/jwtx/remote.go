package jwtx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultJWKSRefresh is how often a RemoteKeySet re-fetches keys.
const DefaultJWKSRefresh = 15 * time.Minute

// RemoteKeySet keeps a KeySet in sync with an identity provider's JWKS
// endpoint. Refresh failures keep the previously loaded keys.
type RemoteKeySet struct {
	URL      string
	Keys     *KeySet
	Client   *http.Client
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRemoteKeySet creates a refresher for url. Interval <= 0 falls back to
// DefaultJWKSRefresh.
func NewRemoteKeySet(url string, interval time.Duration, logger *slog.Logger) *RemoteKeySet {
	if interval <= 0 {
		interval = DefaultJWKSRefresh
	}
	return &RemoteKeySet{
		URL:      url,
		Keys:     NewKeySet(),
		Client:   &http.Client{Timeout: 10 * time.Second},
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh fetches the JWKS once and swaps it into the KeySet.
func (r *RemoteKeySet) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return fmt.Errorf("jwtx: build jwks request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&set); err != nil {
		return fmt.Errorf("jwtx: decode jwks: %w", err)
	}

	n, err := r.Keys.ResetFromJWKS(set)
	if err != nil {
		return err
	}
	r.Logger.Debug("jwks refreshed", "url", r.URL, "keys", n)
	return nil
}

// Start runs the refresh loop in the background. The first fetch happens
// synchronously so callers can fail fast on a bad URL.
func (r *RemoteKeySet) Start(ctx context.Context) error {
	if err := r.Refresh(ctx); err != nil {
		return err
	}
	go r.run()
	r.Logger.Info("jwks refresher started", "url", r.URL, "interval", r.Interval)
	return nil
}

// Stop shuts the refresh loop down and waits for it to exit.
func (r *RemoteKeySet) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("jwks refresher stopped")
}

func (r *RemoteKeySet) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := r.Refresh(ctx); err != nil {
				r.Logger.Warn("jwks refresh failed, keeping previous keys", "error", err)
			}
			cancel()
		case <-r.stopCh:
			return
		}
	}
}
