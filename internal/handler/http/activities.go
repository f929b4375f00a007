// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
)

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.ActivityRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	req.UserID = userID

	activity, err := h.services.ActivityService.CreateActivity(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, activity, http.StatusCreated)
}

// listActivities accepts category_ids (any of) and tag_ids (all of) as
// comma separated id lists.
func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	filter := models.ActivityFilter{UserID: userID}

	query := r.URL.Query()
	if filter.CategoryIDs, err = utils.ParseIDList(query.Get("category_ids")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if filter.TagIDs, err = utils.ParseIDList(query.Get("tag_ids")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	activities, err := h.services.ActivityService.ListActivities(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, nonNil(activities), http.StatusOK)
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	activityID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	activity, err := h.services.ActivityService.GetActivity(r.Context(), activityID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, activity, http.StatusOK)
}

// updateActivity applies a partial update: absent fields are kept,
// "category_id": null clears the category and tag_ids replaces the tag set.
func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	activityID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var patch models.ActivityPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeServiceError(w, r, err)
		return
	}
	patch.ID, patch.UserID = activityID, userID

	activity, err := h.services.ActivityService.UpdateActivity(r.Context(), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, activity, http.StatusOK)
}

func (h *Handler) deleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	activityID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.ActivityService.DeleteActivity(r.Context(), activityID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, models.MessageResponse{Message: app.MsgActivityDeleted}, http.StatusOK)
}
