package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/internal/desk/store/drivers/sqldb/gen"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
)

type appUsersRepo struct {
	q       *gen.Queries
	dialect Dialect

	// Exactly one of db and tx is set.
	db *sql.DB
	tx *sql.Tx
}

func (r *appUsersRepo) GetAppUserByID(ctx context.Context, id string) (domain.AppUser, error) {
	row, err := r.q.GetAppUserByID(ctx, id)
	if err != nil {
		return domain.AppUser{}, mapNotFound(err)
	}
	return mapAppUser(row), nil
}

func (r *appUsersRepo) GetAppUserByUserID(ctx context.Context, userID string) (domain.AppUser, error) {
	row, err := r.q.GetAppUserByUserID(ctx, userID)
	if err != nil {
		return domain.AppUser{}, mapNotFound(err)
	}
	return mapAppUser(row), nil
}

func (r *appUsersRepo) CreateWithDerivedRole(ctx context.Context, u domain.AppUser) (domain.AppUser, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	params := gen.CreateAppUserWithDerivedRoleParams{
		ID:        u.ID,
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      mapStringNull(u.Name),
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}

	var (
		role string
		err  error
	)
	switch {
	case r.dialect.LockAppUsers == "":
		role, err = r.q.CreateAppUserWithDerivedRole(ctx, params)
	case r.tx != nil:
		role, err = r.createLocked(ctx, r.tx, params)
	default:
		role, err = r.createInOwnTx(ctx, params)
	}
	if err != nil {
		if r.dialect.uniqueViolation(err) {
			return domain.AppUser{}, store.ErrAlreadyExists
		}
		return domain.AppUser{}, err
	}

	u.Role = domain.Role(role)
	u.CreatedAt = parseTime(params.CreatedAt)
	u.UpdatedAt = parseTime(params.UpdatedAt)
	return u, nil
}

func (r *appUsersRepo) createInOwnTx(ctx context.Context, params gen.CreateAppUserWithDerivedRoleParams) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	role, err := r.createLocked(ctx, tx, params)
	if err != nil {
		return "", err
	}
	return role, tx.Commit()
}

func (r *appUsersRepo) createLocked(ctx context.Context, tx *sql.Tx, params gen.CreateAppUserWithDerivedRoleParams) (string, error) {
	if _, err := tx.ExecContext(ctx, r.dialect.LockAppUsers); err != nil {
		return "", err
	}
	return gen.New(r.dialect.wrap(tx)).CreateAppUserWithDerivedRole(ctx, params)
}

func (r *appUsersRepo) ListAppUsers(ctx context.Context) ([]domain.AppUser, error) {
	rows, err := r.q.ListAppUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.AppUser, len(rows))
	for i, row := range rows {
		users[i] = mapAppUser(row)
	}
	return users, nil
}

func (r *appUsersRepo) UpdateRole(ctx context.Context, id string, role domain.Role) (domain.AppUser, error) {
	row, err := r.q.UpdateAppUserRole(ctx, gen.UpdateAppUserRoleParams{
		Role:      string(role),
		UpdatedAt: formatTime(time.Now()),
		ID:        id,
	})
	if err != nil {
		return domain.AppUser{}, mapNotFound(err)
	}
	return mapAppUser(row), nil
}

func (r *appUsersRepo) CountAppUsers(ctx context.Context) (int, error) {
	n, err := r.q.CountAppUsers(ctx)
	return int(n), err
}

func mapAppUser(row gen.AppUser) domain.AppUser {
	return domain.AppUser{
		ID:        row.ID,
		UserID:    row.UserID,
		Email:     row.Email,
		Name:      mapNullString(row.Name),
		Role:      domain.Role(row.Role),
		CreatedAt: parseTime(row.CreatedAt),
		UpdatedAt: parseTime(row.UpdatedAt),
	}
}
