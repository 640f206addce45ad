package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
)

// SessionHandler registers the caller on first access.
type SessionHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles POST /v1/session
//
//	@Summary		Start Session
//	@Description	Looks up the caller's role record and creates it on first access. The very first user becomes admin,
//	@Description	everyone after that standard. Role setup failures do not fail the request: the response carries a
//	@Description	warning and no user, and the caller has no privileges.
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	desksdk.SessionResponse	"user, is_admin, warning"
//	@Failure		401	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		429	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session [post].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, _ := httpx.ClaimsFromContext(r.Context())

	sess := h.UserService.StartSession(r.Context(), service.Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName(),
	})

	resp := desksdk.SessionResponse{
		IsAdmin: sess.IsAdmin(),
		Warning: sess.Warning,
	}
	if sess.User != nil {
		u := desksdk.UserFromDomain(*sess.User)
		resp.User = &u
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
