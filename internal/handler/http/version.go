package http

import (
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}

type healthStatus struct {
	Status string `json:"status"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("health check failed")
			utils.WriteError(w, http.StatusServiceUnavailable, app.CodeServiceUnavailable, app.MsgUnhealthy, nil)
			return
		}
	}
	utils.WriteSuccess(w, healthStatus{Status: "ok"}, http.StatusOK)
}
