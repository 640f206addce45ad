package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/pkg/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/idx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// ClientInput is the client form. Update replaces every field.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

type ClientService struct {
	Store store.Store
	Clock
}

// List returns the caller's clients, newest first, narrowed by filter.
func (s *ClientService) List(ctx context.Context, userID string, filter domain.ClientFilter) ([]domain.Client, error) {
	clients, err := s.Store.Clients().ListClients(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "error", err)
		return nil, err
	}

	out := clients[:0]
	for _, c := range clients {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *ClientService) Create(ctx context.Context, userID string, in ClientInput) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := invalid(domain.ValidateClient(in.Name, in.Email)); err != nil {
		return domain.Client{}, err
	}

	now := s.now()
	c := domain.Client{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(&c)

	if err := s.Store.Clients().CreateClient(ctx, c); err != nil {
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID)
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, userID, id string, in ClientInput) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if err := invalid(domain.ValidateClient(in.Name, in.Email)); err != nil {
		return domain.Client{}, err
	}

	c := domain.Client{ID: id, UserID: userID, UpdatedAt: s.now()}
	in.apply(&c)

	updated, err := s.Store.Clients().UpdateClient(ctx, c)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		l.Error("failed to update client", "error", err, "client_id", id)
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return updated, nil
}

// Delete removes the client together with its domains and hosting.
func (s *ClientService) Delete(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Clients().DeleteClient(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}

// ExportCSV writes every client of the caller as CSV and returns the
// suggested attachment file name.
func (s *ClientService) ExportCSV(ctx context.Context, userID string, w io.Writer) (string, error) {
	clients, err := s.Store.Clients().ListClients(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients for export", "error", err)
		return "", err
	}

	if err := domain.WriteClientsCSV(w, clients); err != nil {
		return "", err
	}
	return domain.ExportFilename(s.now()), nil
}

func (in ClientInput) apply(c *domain.Client) {
	c.Name = strings.TrimSpace(in.Name)
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Company = strings.TrimSpace(in.Company)
}

// ownedClient resolves clientID within the caller's clients.
func ownedClient(ctx context.Context, st store.Store, userID, clientID string) error {
	_, err := st.Clients().GetClient(ctx, userID, clientID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrClientNotFound
	}
	return err
}
