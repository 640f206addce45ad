package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// writeServiceError maps a service error to its response. Unknown errors
// are logged and answered with 500 "Failed to <action>".
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		httpx.WriteValidationError(w, verr.Fields)
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteError(w, http.StatusNotFound, desksdk.ErrorCodeNotFound, "Client not found")
	case errors.Is(err, service.ErrDomainNotFound):
		httpx.WriteError(w, http.StatusNotFound, desksdk.ErrorCodeNotFound, "Domain not found")
	case errors.Is(err, service.ErrHostingNotFound):
		httpx.WriteError(w, http.StatusNotFound, desksdk.ErrorCodeNotFound, "Hosting service not found")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, desksdk.ErrorCodeNotFound, "User not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, desksdk.ErrorCodeForbidden, "Admin role required")
	case errors.Is(err, service.ErrSelfRoleChange):
		httpx.WriteError(w, http.StatusForbidden, desksdk.ErrorCodeSelfRoleChange, "You cannot change your own role")
	default:
		slogx.FromContext(r.Context()).Error("failed to "+action, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, desksdk.ErrorCodeServerError, "Failed to "+action)
	}
}

// decodeBody decodes the JSON request body into v, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, desksdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return false
	}
	return true
}

// subject returns the authenticated identity. AuthnMiddleware guarantees it
// on secured routes.
func subject(r *http.Request) string {
	id, _ := httpx.UserIDFromContext(r.Context())
	return id
}
