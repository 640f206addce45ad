package sqldb

import (
	"context"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	return r.q.CreateClient(ctx, gen.CreateClientParams{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     mapStringNull(c.Phone),
		Company:   mapStringNull(c.Company),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	})
}

func (r *clientsRepo) GetClient(ctx context.Context, userID, id string) (domain.Client, error) {
	row, err := r.q.GetClient(ctx, gen.GetClientParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	rows, err := r.q.ListClients(ctx, userID)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.Client, len(rows))
	for i, row := range rows {
		clients[i] = mapClient(row)
	}
	return clients, nil
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	row, err := r.q.UpdateClient(ctx, gen.UpdateClientParams{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     mapStringNull(c.Phone),
		Company:   mapStringNull(c.Company),
		UpdatedAt: formatTime(c.UpdatedAt),
		ID:        c.ID,
		UserID:    c.UserID,
	})
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, userID, id string) error {
	n, err := r.q.DeleteClient(ctx, gen.DeleteClientParams{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clientsRepo) CountClients(ctx context.Context, userID string) (int, error) {
	n, err := r.q.CountClients(ctx, userID)
	return int(n), err
}

func mapClient(row gen.Client) domain.Client {
	return domain.Client{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     mapNullString(row.Phone),
		Company:   mapNullString(row.Company),
		CreatedAt: parseTime(row.CreatedAt),
		UpdatedAt: parseTime(row.UpdatedAt),
	}
}
