package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// getHealth reports the last store health check: 200 when the store was
// reachable, 503 otherwise.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	if h.healthReporter != nil && !h.healthReporter.Healthy() {
		utils.WriteJSON(w, models.HealthResponse{Status: statusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: statusOK}, http.StatusOK)
}
