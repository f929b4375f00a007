package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
)

func (h *Handler) statsOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	overview, err := h.services.StatsService.Overview(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, overview, http.StatusOK)
}

func (h *Handler) statsByCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	stats, err := h.services.StatsService.ByCategory(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, nonNil(stats), http.StatusOK)
}

func (h *Handler) statsByTag(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	stats, err := h.services.StatsService.ByTag(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, nonNil(stats), http.StatusOK)
}

func (h *Handler) statsTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	days, err := timelineDays(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	points, err := h.services.StatsService.Timeline(r.Context(), models.TimelineRequest{UserID: userID, Days: days})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, nonNil(points), http.StatusOK)
}

// timelineDays reads ?days=N. Absent means the default window; anything
// outside 1..365 is rejected.
func timelineDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return models.DefaultTimelineDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < models.MinTimelineDays || days > models.MaxTimelineDays {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDays, raw)
	}
	return days, nil
}
