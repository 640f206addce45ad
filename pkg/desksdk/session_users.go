package desksdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListUsers returns all users for admins and only the caller otherwise.
func (s *Session) ListUsers(ctx context.Context, q string) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/users"+searchQuery(q), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListUsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// SetUserRole changes another user's role. Admin only.
func (s *Session) SetUserRole(ctx context.Context, id, role string) (*User, error) {
	return sendRecord[User](ctx, s, http.MethodPut, "/v1/users/"+url.PathEscape(id)+"/role", RoleRequest{Role: role}, http.StatusOK)
}

// Dashboard returns the service-side dashboard counters.
func (s *Session) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/dashboard", nil, nil)
	if err != nil {
		return nil, err
	}

	var out DashboardResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
