package http

import (
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.CategoryRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	req.UserID = userID

	category, err := h.services.CategoryService.CreateCategory(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, category, http.StatusCreated)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	categories, err := h.services.CategoryService.ListCategories(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, nonNil(categories), http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), categoryID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, category, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var patch models.CategoryPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeServiceError(w, r, err)
		return
	}
	patch.ID, patch.UserID = categoryID, userID

	category, err := h.services.CategoryService.UpdateCategory(r.Context(), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, category, http.StatusOK)
}

// deleteCategory leaves the category's activities uncategorized.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(r.Context(), categoryID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteSuccess(w, models.MessageResponse{Message: app.MsgCategoryDeleted}, http.StatusOK)
}
