package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/idx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// Identity is what the bearer token says about the caller.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// Session is the outcome of StartSession. User is nil when no role record
// could be read or created; the caller then has no privileges.
type Session struct {
	User    *domain.AppUser
	Warning string
}

func (s Session) IsAdmin() bool { return s.User != nil && s.User.IsAdmin() }

const warnRoleSetup = "could not set up your user role; continuing without one"

type UserService struct {
	Store store.Store
	Clock
}

// StartSession makes sure the identity has an app user record. The first
// record ever created is admin, later ones standard; the store decides this
// atomically. Failures never abort the session.
func (s *UserService) StartSession(ctx context.Context, id Identity) Session {
	l := slogx.FromContext(ctx)

	existing, err := s.Store.AppUsers().GetAppUserByUserID(ctx, id.UserID)
	switch {
	case err == nil:
		return Session{User: &existing}
	case !errors.Is(err, store.ErrNotFound):
		l.Error("failed to look up app user", "error", err)
		return Session{}
	}

	now := s.now()
	created, err := s.Store.AppUsers().CreateWithDerivedRole(ctx, domain.AppUser{
		ID:        idx.NewAt(now).String(),
		UserID:    id.UserID,
		Email:     strings.TrimSpace(id.Email),
		Name:      domain.DeriveName(id.DisplayName, id.Email),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// A concurrent session for the same identity won the insert.
		existing, err = s.Store.AppUsers().GetAppUserByUserID(ctx, id.UserID)
		if err == nil {
			return Session{User: &existing}
		}
	}
	if err != nil {
		l.Error("failed to create app user", "error", err)
		return Session{Warning: warnRoleSetup}
	}

	l.Info("app user created", "app_user_id", created.ID, "role", created.Role)
	return Session{User: &created}
}

// Current returns the caller's record, or ErrNoAppUser.
func (s *UserService) Current(ctx context.Context, userID string) (domain.AppUser, error) {
	u, err := s.Store.AppUsers().GetAppUserByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.AppUser{}, ErrNoAppUser
	}
	return u, err
}

// IsAdmin reports whether the caller holds the admin role. Lookup failures
// count as not admin.
func (s *UserService) IsAdmin(ctx context.Context, userID string) bool {
	u, err := s.Current(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNoAppUser) {
			slogx.FromContext(ctx).Error("failed to look up app user", "error", err)
		}
		return false
	}
	return u.IsAdmin()
}

// List returns every user for admins and only the caller otherwise,
// narrowed by q on name or email.
func (s *UserService) List(ctx context.Context, userID, q string) ([]domain.AppUser, error) {
	caller, err := s.Current(ctx, userID)
	if errors.Is(err, ErrNoAppUser) {
		return []domain.AppUser{}, nil
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to look up app user", "error", err)
		return nil, err
	}

	users := []domain.AppUser{caller}
	if caller.IsAdmin() {
		users, err = s.Store.AppUsers().ListAppUsers(ctx)
		if err != nil {
			slogx.FromContext(ctx).Error("failed to list app users", "error", err)
			return nil, err
		}
	}

	out := users[:0]
	for _, u := range users {
		if domain.MatchUser(q, u) {
			out = append(out, u)
		}
	}
	return out, nil
}

// SetRole changes the role of the app user targetID. Only admins may do
// this, and never on their own record.
func (s *UserService) SetRole(ctx context.Context, userID, targetID, role string) (domain.AppUser, error) {
	l := slogx.FromContext(ctx)

	if err := invalid(domain.ValidateRole(role)); err != nil {
		return domain.AppUser{}, err
	}

	caller, err := s.Current(ctx, userID)
	if errors.Is(err, ErrNoAppUser) {
		return domain.AppUser{}, ErrForbidden
	}
	if err != nil {
		return domain.AppUser{}, err
	}
	if !caller.IsAdmin() {
		l.Warn("non-admin attempted role change", "target_id", targetID)
		return domain.AppUser{}, ErrForbidden
	}
	if caller.ID == targetID {
		return domain.AppUser{}, ErrSelfRoleChange
	}

	updated, err := s.Store.AppUsers().UpdateRole(ctx, targetID, domain.Role(role))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AppUser{}, ErrUserNotFound
		}
		l.Error("failed to update role", "error", err, "target_id", targetID)
		return domain.AppUser{}, err
	}

	l.Info("role updated", "target_id", targetID, "role", role)
	return updated, nil
}
