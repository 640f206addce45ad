package desksdk

import (
	"context"
	"net/http"
	"net/url"
)

func searchQuery(q string) string {
	if q == "" {
		return ""
	}
	return "?" + url.Values{"q": {q}}.Encode()
}

// ListDomains returns the caller's domains matching q on the domain name or
// the client name.
func (s *Session) ListDomains(ctx context.Context, q string) ([]Domain, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/domains"+searchQuery(q), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListDomainsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Domains, nil
}

func (s *Session) CreateDomain(ctx context.Context, req DomainRequest) (*Domain, error) {
	return sendRecord[Domain](ctx, s, http.MethodPost, "/v1/domains", req, http.StatusCreated)
}

func (s *Session) UpdateDomain(ctx context.Context, id string, req DomainRequest) (*Domain, error) {
	return sendRecord[Domain](ctx, s, http.MethodPut, "/v1/domains/"+url.PathEscape(id), req, http.StatusOK)
}

func (s *Session) DeleteDomain(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/domains/"+url.PathEscape(id))
}

// ListHosting returns the caller's hosting services matching q on the
// service name or the client name.
func (s *Session) ListHosting(ctx context.Context, q string) ([]Hosting, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/hosting"+searchQuery(q), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListHostingResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Hosting, nil
}

func (s *Session) CreateHosting(ctx context.Context, req HostingRequest) (*Hosting, error) {
	return sendRecord[Hosting](ctx, s, http.MethodPost, "/v1/hosting", req, http.StatusCreated)
}

func (s *Session) UpdateHosting(ctx context.Context, id string, req HostingRequest) (*Hosting, error) {
	return sendRecord[Hosting](ctx, s, http.MethodPut, "/v1/hosting/"+url.PathEscape(id), req, http.StatusOK)
}

func (s *Session) DeleteHosting(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/hosting/"+url.PathEscape(id))
}
