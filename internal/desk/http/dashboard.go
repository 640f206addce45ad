package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientdesk/internal/desk/service"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// ServeHTTP handles GET /v1/dashboard
//
//	@Summary		Dashboard Counters
//	@Description	Counts the caller's clients, active domains and hosting (stored status) and services expiring within
//	@Description	30 days (derived). total_users is only present for admins.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	desksdk.DashboardResponse	"counters"
//	@Failure		401	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	desksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/dashboard [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DashboardService.Stats(r.Context(), subject(r))
	if err != nil {
		writeServiceError(w, r, err, "compute dashboard")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, desksdk.DashboardFromStats(stats))
}
