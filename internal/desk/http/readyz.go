package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/clientdesk/internal/desk/store"
	"github.com/aussiebroadwan/clientdesk/pkg/desksdk"
	"github.com/aussiebroadwan/clientdesk/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, database connectivity and whether token verification keys are loaded
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	desksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	desksdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys KeyStatus,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &desksdk.HealthChecks{
			Database: "ok",
			Keys:     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check if token verification keys are loaded
		if keys == nil || !keys.IsReady() {
			checks.Keys = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, desksdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
