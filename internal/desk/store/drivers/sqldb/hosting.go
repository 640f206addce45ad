package sqldb

import (
	"context"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

type hostingRepo struct {
	q       *gen.Queries
	dialect Dialect
}

func (r *hostingRepo) CreateHosting(ctx context.Context, h domain.Hosting) error {
	err := r.q.CreateHosting(ctx, gen.CreateHostingParams{
		ID:             h.ID,
		UserID:         h.UserID,
		ClientID:       h.ClientID,
		ServiceName:    h.ServiceName,
		Provider:       mapStringNull(h.Provider),
		PlanType:       mapStringNull(h.PlanType),
		ExpirationDate: domain.FormatDate(h.ExpirationDate),
		Status:         string(h.Status),
		CreatedAt:      formatTime(h.CreatedAt),
		UpdatedAt:      formatTime(h.UpdatedAt),
	})
	return r.dialect.mapMissingParent(err)
}

func (r *hostingRepo) ListHosting(ctx context.Context, userID string) ([]domain.Hosting, error) {
	rows, err := r.q.ListHosting(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapHostingRows(rows), nil
}

func (r *hostingRepo) ListAllHosting(ctx context.Context) ([]domain.Hosting, error) {
	rows, err := r.q.ListAllHosting(ctx)
	if err != nil {
		return nil, err
	}
	return mapHostingRows(rows), nil
}

func (r *hostingRepo) UpdateHosting(ctx context.Context, h domain.Hosting) (domain.Hosting, error) {
	row, err := r.q.UpdateHosting(ctx, gen.UpdateHostingParams{
		ClientID:       h.ClientID,
		ServiceName:    h.ServiceName,
		Provider:       mapStringNull(h.Provider),
		PlanType:       mapStringNull(h.PlanType),
		ExpirationDate: domain.FormatDate(h.ExpirationDate),
		Status:         string(h.Status),
		UpdatedAt:      formatTime(h.UpdatedAt),
		ID:             h.ID,
		UserID:         h.UserID,
	})
	if err != nil {
		return domain.Hosting{}, mapNotFound(err)
	}
	return mapHosting(row), nil
}

func (r *hostingRepo) DeleteHosting(ctx context.Context, userID, id string) error {
	n, err := r.q.DeleteHosting(ctx, gen.DeleteHostingParams{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapHostingRows(rows []gen.Hosting) []domain.Hosting {
	out := make([]domain.Hosting, len(rows))
	for i, row := range rows {
		out[i] = mapHosting(row)
	}
	return out
}

func mapHosting(row gen.Hosting) domain.Hosting {
	return domain.Hosting{
		ID:             row.ID,
		UserID:         row.UserID,
		ClientID:       row.ClientID,
		ServiceName:    row.ServiceName,
		Provider:       mapNullString(row.Provider),
		PlanType:       mapNullString(row.PlanType),
		ExpirationDate: parseDate(row.ExpirationDate),
		Status:         domain.Status(row.Status),
		CreatedAt:      parseTime(row.CreatedAt),
		UpdatedAt:      parseTime(row.UpdatedAt),
	}
}
