package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
)

// UsersHandler handles user management endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /v1/users
//
//	@Summary		List Users
//	@Description	Admins see every user; everyone else sees only their own record. q matches name or email.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q	query		string						false	"Search name or email"
//	@Success		200	{object}	desksdk.ListUsersResponse	"users"
//	@Failure		401	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context(), subject(r), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "list users")
		return
	}

	out := make([]desksdk.User, len(users))
	for i, u := range users {
		out[i] = desksdk.UserFromDomain(u)
	}
	httpx.WriteJSON(w, http.StatusOK, desksdk.ListUsersResponse{Users: out})
}

// HandleSetRole handles PUT /v1/users/{id}/role
//
//	@Summary		Change User Role
//	@Description	Sets another user's role to admin or standard. Admin only; admins cannot change their own role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"App user ID (ULID)"
//	@Param			request	body		desksdk.RoleRequest				true	"New role"
//	@Success		200		{object}	desksdk.User					"Updated user"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		403		{object}	desksdk.ErrorResponse			"forbidden or self_role_change"
//	@Failure		404		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/users/{id}/role [put].
func (h *UsersHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	var req desksdk.RoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.SetRole(r.Context(), subject(r), r.PathValue("id"), req.Role)
	if err != nil {
		writeServiceError(w, r, err, "update role")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, desksdk.UserFromDomain(u))
}
