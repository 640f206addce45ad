package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
	"github.com/aussiebroadwan/clientdesk/pkg/jwtx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// DevTokenHandler mints tokens for arbitrary identities. It is only routed
// when the service runs with ephemeral keys.
type DevTokenHandler struct {
	Keys *jwtx.KeyManager
}

// ServeHTTP handles POST /v1/dev/token
//
//	@Summary		Mint Development Token
//	@Description	Signs an access token for the given identity with the process's ephemeral key.
//	@Description	Only available when AUTH_MODE=ephemeral; tokens stop verifying when the service restarts.
//	@Tags			Development
//	@Accept			json
//	@Produce		json
//	@Param			request	body		desksdk.DevTokenRequest			true	"Identity to mint for"
//	@Success		200		{object}	desksdk.DevTokenResponse		"access_token, token_type, expires_in"
//	@Failure		400		{object}	desksdk.ValidationErrorResponse	"code, message, details"
//	@Failure		500		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/dev/token [post].
func (h *DevTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req desksdk.DevTokenRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" {
		httpx.WriteValidationError(w, map[string]string{"sub": "required"})
		return
	}

	token, expiresAt, err := h.Keys.Mint(req.Subject, strings.TrimSpace(req.Email), strings.TrimSpace(req.Name))
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to mint dev token", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, desksdk.ErrorCodeServerError, "Failed to mint token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, desksdk.DevTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(expiresAt).Seconds()),
		ExpiresAt:   expiresAt,
	})
}
