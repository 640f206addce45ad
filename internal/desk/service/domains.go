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

// DomainInput is the domain form. Status defaults to active.
type DomainInput struct {
	ClientID       string
	DomainName     string
	Registrar      string
	DNSProvider    string
	ExpirationDate string // YYYY-MM-DD
	Status         string
}

type DomainService struct {
	Store store.Store
	Clock
}

// List returns the caller's domains matching q on the domain name or the
// owning client's name, along with the client names used for the match.
func (s *DomainService) List(ctx context.Context, userID, q string) ([]domain.Domain, map[string]string, error) {
	l := slogx.FromContext(ctx)

	domains, err := s.Store.Domains().ListDomains(ctx, userID)
	if err != nil {
		l.Error("failed to list domains", "error", err)
		return nil, nil, err
	}
	names, err := clientNames(ctx, s.Store, userID)
	if err != nil {
		l.Error("failed to list clients", "error", err)
		return nil, nil, err
	}

	out := domains[:0]
	for _, d := range domains {
		if domain.MatchDomain(q, d, domain.ClientName(names, d.ClientID)) {
			out = append(out, d)
		}
	}
	return out, names, nil
}

func (s *DomainService) Create(ctx context.Context, userID string, in DomainInput) (domain.Domain, error) {
	l := slogx.FromContext(ctx)

	d, err := in.build()
	if err != nil {
		return domain.Domain{}, err
	}

	now := s.now()
	d.ID = idx.NewAt(now).String()
	d.UserID = userID
	d.CreatedAt, d.UpdatedAt = now, now

	// The client may be deleted between the check and the insert; the
	// foreign key then reports it missing.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := ownedClient(ctx, tx, userID, d.ClientID); err != nil {
			return err
		}
		if err := tx.Domains().CreateDomain(ctx, d); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrClientNotFound) {
			l.Error("failed to create domain", "error", err)
		}
		return domain.Domain{}, err
	}

	l.Info("domain created", "domain_id", d.ID, "client_id", d.ClientID)
	return d, nil
}

func (s *DomainService) Update(ctx context.Context, userID, id string, in DomainInput) (domain.Domain, error) {
	l := slogx.FromContext(ctx)

	d, err := in.build()
	if err != nil {
		return domain.Domain{}, err
	}
	if err := ownedClient(ctx, s.Store, userID, d.ClientID); err != nil {
		return domain.Domain{}, err
	}

	d.ID = id
	d.UserID = userID
	d.UpdatedAt = s.now()

	updated, err := s.Store.Domains().UpdateDomain(ctx, d)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Domain{}, ErrDomainNotFound
		}
		l.Error("failed to update domain", "error", err, "domain_id", id)
		return domain.Domain{}, err
	}

	l.Info("domain updated", "domain_id", id)
	return updated, nil
}

func (s *DomainService) Delete(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Domains().DeleteDomain(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDomainNotFound
		}
		l.Error("failed to delete domain", "error", err, "domain_id", id)
		return err
	}

	l.Info("domain deleted", "domain_id", id)
	return nil
}

func (in DomainInput) build() (domain.Domain, error) {
	if err := invalid(domain.ValidateDomain(in.ClientID, in.DomainName, in.ExpirationDate, in.Status)); err != nil {
		return domain.Domain{}, err
	}

	exp, _ := domain.ParseDate(strings.TrimSpace(in.ExpirationDate))
	status, _ := domain.ParseStatus(in.Status)
	return domain.Domain{
		ClientID:       strings.TrimSpace(in.ClientID),
		DomainName:     strings.TrimSpace(in.DomainName),
		Registrar:      strings.TrimSpace(in.Registrar),
		DNSProvider:    strings.TrimSpace(in.DNSProvider),
		ExpirationDate: exp,
		Status:         status,
	}, nil
}

func clientNames(ctx context.Context, st store.Store, userID string) (map[string]string, error) {
	clients, err := st.Clients().ListClients(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.ClientNames(clients), nil
}
