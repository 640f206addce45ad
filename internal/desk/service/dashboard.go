package service

import (
	"context"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

type DashboardService struct {
	Store store.Store
	Users *UserService
	Clock
}

// Stats aggregates the caller's records. TotalUsers is only set for admins.
func (s *DashboardService) Stats(ctx context.Context, userID string) (domain.Stats, error) {
	l := slogx.FromContext(ctx)

	total, err := s.Store.Clients().CountClients(ctx, userID)
	if err != nil {
		l.Error("failed to count clients", "error", err)
		return domain.Stats{}, err
	}
	domains, err := s.Store.Domains().ListDomains(ctx, userID)
	if err != nil {
		l.Error("failed to list domains", "error", err)
		return domain.Stats{}, err
	}
	hosting, err := s.Store.Hosting().ListHosting(ctx, userID)
	if err != nil {
		l.Error("failed to list hosting", "error", err)
		return domain.Stats{}, err
	}

	ds := make([]domain.Service, len(domains))
	for i, d := range domains {
		ds[i] = d.Service()
	}
	hs := make([]domain.Service, len(hosting))
	for i, h := range hosting {
		hs[i] = h.Service()
	}

	stats := domain.ComputeStats(total, ds, hs, s.now(), s.location())

	if s.Users != nil && s.Users.IsAdmin(ctx, userID) {
		n, err := s.Store.AppUsers().CountAppUsers(ctx)
		if err != nil {
			l.Error("failed to count users", "error", err)
			return domain.Stats{}, err
		}
		stats.TotalUsers = &n
	}
	return stats, nil
}
