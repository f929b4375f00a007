package http

import (
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
)

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.TagRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	req.UserID = userID

	tag, err := h.services.TagService.CreateTag(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, tag, http.StatusCreated)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	tags, err := h.services.TagService.ListTags(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, nonNil(tags), http.StatusOK)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	tagID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	tag, err := h.services.TagService.GetTag(r.Context(), tagID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, tag, http.StatusOK)
}

func (h *Handler) updateTag(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	tagID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var patch models.TagPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeServiceError(w, r, err)
		return
	}
	patch.ID, patch.UserID = tagID, userID

	tag, err := h.services.TagService.UpdateTag(r.Context(), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, tag, http.StatusOK)
}

// deleteTag also removes the tag from every activity carrying it.
func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	tagID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.TagService.DeleteTag(r.Context(), tagID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, models.MessageResponse{Message: app.MsgTagDeleted}, http.StatusOK)
}
