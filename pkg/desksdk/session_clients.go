package desksdk

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// StartSession registers the caller on first access and reports its role.
func (s *Session) StartSession(ctx context.Context) (*SessionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/session", nil, nil)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClientQuery narrows ListClients. Empty fields match everything.
type ClientQuery struct {
	Query   string
	Company string
}

func (q ClientQuery) encode() string {
	v := url.Values{}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Company != "" {
		v.Set("company", q.Company)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (s *Session) ListClients(ctx context.Context, q ClientQuery) ([]Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/clients"+q.encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListClientsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (s *Session) CreateClient(ctx context.Context, req ClientRequest) (*Client, error) {
	return sendRecord[Client](ctx, s, http.MethodPost, "/v1/clients", req, http.StatusCreated)
}

func (s *Session) UpdateClient(ctx context.Context, id string, req ClientRequest) (*Client, error) {
	return sendRecord[Client](ctx, s, http.MethodPut, "/v1/clients/"+url.PathEscape(id), req, http.StatusOK)
}

// DeleteClient deletes the client and, on the service side, its domains and
// hosting.
func (s *Session) DeleteClient(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/clients/"+url.PathEscape(id))
}

// ExportClientsCSV streams the service-side CSV export into w and returns
// the file name suggested by the service.
func (s *Session) ExportClientsCSV(ctx context.Context, w io.Writer) (string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/clients/export", nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", parseErrorResponse(resp, body)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read export: %w", err)
	}

	_, params, _ := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	return params["filename"], nil
}

func (s *Session) delete(ctx context.Context, path string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// sendRecord sends req as JSON and decodes a single record of type T.
func sendRecord[T any](ctx context.Context, s *Session, method, path string, req any, expected int) (*T, error) {
	body, err := encodeJSON(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, method, path, body, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out T
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}
	return &out, nil
}
