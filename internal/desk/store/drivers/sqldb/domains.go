package sqldb

import (
	"context"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

type domainsRepo struct {
	q       *gen.Queries
	dialect Dialect
}

func (r *domainsRepo) CreateDomain(ctx context.Context, d domain.Domain) error {
	err := r.q.CreateDomain(ctx, gen.CreateDomainParams{
		ID:             d.ID,
		UserID:         d.UserID,
		ClientID:       d.ClientID,
		DomainName:     d.DomainName,
		Registrar:      mapStringNull(d.Registrar),
		DnsProvider:    mapStringNull(d.DNSProvider),
		ExpirationDate: domain.FormatDate(d.ExpirationDate),
		Status:         string(d.Status),
		CreatedAt:      formatTime(d.CreatedAt),
		UpdatedAt:      formatTime(d.UpdatedAt),
	})
	return r.dialect.mapMissingParent(err)
}

func (r *domainsRepo) ListDomains(ctx context.Context, userID string) ([]domain.Domain, error) {
	rows, err := r.q.ListDomains(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapDomains(rows), nil
}

func (r *domainsRepo) ListAllDomains(ctx context.Context) ([]domain.Domain, error) {
	rows, err := r.q.ListAllDomains(ctx)
	if err != nil {
		return nil, err
	}
	return mapDomains(rows), nil
}

func (r *domainsRepo) UpdateDomain(ctx context.Context, d domain.Domain) (domain.Domain, error) {
	row, err := r.q.UpdateDomain(ctx, gen.UpdateDomainParams{
		ClientID:       d.ClientID,
		DomainName:     d.DomainName,
		Registrar:      mapStringNull(d.Registrar),
		DnsProvider:    mapStringNull(d.DNSProvider),
		ExpirationDate: domain.FormatDate(d.ExpirationDate),
		Status:         string(d.Status),
		UpdatedAt:      formatTime(d.UpdatedAt),
		ID:             d.ID,
		UserID:         d.UserID,
	})
	if err != nil {
		return domain.Domain{}, mapNotFound(err)
	}
	return mapDomain(row), nil
}

func (r *domainsRepo) DeleteDomain(ctx context.Context, userID, id string) error {
	n, err := r.q.DeleteDomain(ctx, gen.DeleteDomainParams{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapDomains(rows []gen.Domain) []domain.Domain {
	out := make([]domain.Domain, len(rows))
	for i, row := range rows {
		out[i] = mapDomain(row)
	}
	return out
}

func mapDomain(row gen.Domain) domain.Domain {
	return domain.Domain{
		ID:             row.ID,
		UserID:         row.UserID,
		ClientID:       row.ClientID,
		DomainName:     row.DomainName,
		Registrar:      mapNullString(row.Registrar),
		DNSProvider:    mapNullString(row.DnsProvider),
		ExpirationDate: parseDate(row.ExpirationDate),
		Status:         domain.Status(row.Status),
		CreatedAt:      parseTime(row.CreatedAt),
		UpdatedAt:      parseTime(row.UpdatedAt),
	}
}
