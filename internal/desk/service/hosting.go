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

// HostingInput is the hosting form. Status defaults to active.
type HostingInput struct {
	ClientID       string
	ServiceName    string
	Provider       string
	PlanType       string
	ExpirationDate string // YYYY-MM-DD
	Status         string
}

type HostingService struct {
	Store store.Store
	Clock
}

// List returns the caller's hosting services matching q on the service name
// or the owning client's name.
func (s *HostingService) List(ctx context.Context, userID, q string) ([]domain.Hosting, map[string]string, error) {
	l := slogx.FromContext(ctx)

	hosting, err := s.Store.Hosting().ListHosting(ctx, userID)
	if err != nil {
		l.Error("failed to list hosting", "error", err)
		return nil, nil, err
	}
	names, err := clientNames(ctx, s.Store, userID)
	if err != nil {
		l.Error("failed to list clients", "error", err)
		return nil, nil, err
	}

	out := hosting[:0]
	for _, h := range hosting {
		if domain.MatchHosting(q, h, domain.ClientName(names, h.ClientID)) {
			out = append(out, h)
		}
	}
	return out, names, nil
}

func (s *HostingService) Create(ctx context.Context, userID string, in HostingInput) (domain.Hosting, error) {
	l := slogx.FromContext(ctx)

	h, err := in.build()
	if err != nil {
		return domain.Hosting{}, err
	}

	now := s.now()
	h.ID = idx.NewAt(now).String()
	h.UserID = userID
	h.CreatedAt, h.UpdatedAt = now, now

	// The client may be deleted between the check and the insert; the
	// foreign key then reports it missing.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := ownedClient(ctx, tx, userID, h.ClientID); err != nil {
			return err
		}
		if err := tx.Hosting().CreateHosting(ctx, h); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrClientNotFound) {
			l.Error("failed to create hosting", "error", err)
		}
		return domain.Hosting{}, err
	}

	l.Info("hosting created", "hosting_id", h.ID, "client_id", h.ClientID)
	return h, nil
}

func (s *HostingService) Update(ctx context.Context, userID, id string, in HostingInput) (domain.Hosting, error) {
	l := slogx.FromContext(ctx)

	h, err := in.build()
	if err != nil {
		return domain.Hosting{}, err
	}
	if err := ownedClient(ctx, s.Store, userID, h.ClientID); err != nil {
		return domain.Hosting{}, err
	}

	h.ID = id
	h.UserID = userID
	h.UpdatedAt = s.now()

	updated, err := s.Store.Hosting().UpdateHosting(ctx, h)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Hosting{}, ErrHostingNotFound
		}
		l.Error("failed to update hosting", "error", err, "hosting_id", id)
		return domain.Hosting{}, err
	}

	l.Info("hosting updated", "hosting_id", id)
	return updated, nil
}

func (s *HostingService) Delete(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Hosting().DeleteHosting(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrHostingNotFound
		}
		l.Error("failed to delete hosting", "error", err, "hosting_id", id)
		return err
	}

	l.Info("hosting deleted", "hosting_id", id)
	return nil
}

func (in HostingInput) build() (domain.Hosting, error) {
	if err := invalid(domain.ValidateHosting(in.ClientID, in.ServiceName, in.ExpirationDate, in.Status)); err != nil {
		return domain.Hosting{}, err
	}

	exp, _ := domain.ParseDate(strings.TrimSpace(in.ExpirationDate))
	status, _ := domain.ParseStatus(in.Status)
	return domain.Hosting{
		ClientID:       strings.TrimSpace(in.ClientID),
		ServiceName:    strings.TrimSpace(in.ServiceName),
		Provider:       strings.TrimSpace(in.Provider),
		PlanType:       strings.TrimSpace(in.PlanType),
		ExpirationDate: exp,
		Status:         status,
	}, nil
}
