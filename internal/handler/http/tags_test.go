package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/internal/validators"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_CRUD(t *testing.T) {
	stored := map[int64]models.Tag{}
	tags := &fakeTagService{
		createFn: func(_ context.Context, req models.TagRequest) (models.Tag, error) {
			tag := models.Tag{ID: int64(len(stored) + 1), UserID: req.UserID, Name: req.Name, Color: req.Color}
			stored[tag.ID] = tag
			return tag, nil
		},
		listFn: func(_ context.Context, _ int64) ([]models.Tag, error) {
			out := make([]models.Tag, 0, len(stored))
			for id := int64(1); id <= int64(len(stored)); id++ {
				if tag, ok := stored[id]; ok {
					out = append(out, tag)
				}
			}
			return out, nil
		},
		updateFn: func(_ context.Context, patch models.TagPatch) (models.Tag, error) {
			tag, ok := stored[patch.ID]
			if !ok {
				return models.Tag{}, store.ErrTagNotFound
			}
			if name, ok := patch.Name.Get(); ok {
				tag.Name = name
			}
			stored[tag.ID] = tag
			return tag, nil
		},
		deleteFn: func(_ context.Context, tagID, _ int64) error {
			if _, ok := stored[tagID]; !ok {
				return store.ErrTagNotFound
			}
			delete(stored, tagID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{TagService: tags})

	rec := serve(t, h, http.MethodPost, "/api/tags", `{"name":"urgent","color":"#FF0000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData[models.Tag](t, rec)
	assert.Equal(t, testUser.ID, created.UserID)

	rec = serve(t, h, http.MethodPut, "/api/tags/1", `{"name":"later"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "later", decodeData[models.Tag](t, rec).Name)

	rec = serve(t, h, http.MethodGet, "/api/tags", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[[]models.Tag](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "#FF0000", list[0].Color)

	rec = serve(t, h, http.MethodDelete, "/api/tags/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgTagDeleted, decodeData[models.MessageResponse](t, rec).Message)

	rec = serve(t, h, http.MethodDelete, "/api/tags/1", "")
	body := requireFailure(t, rec, http.StatusNotFound, app.CodeNotFound)
	assert.Equal(t, app.MsgTagNotFound, body.Message)
}

func TestCreateTag_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad json", body: `[`, wantStatus: http.StatusBadRequest, wantCode: app.CodeInvalidJSON},
		{name: "bad color", body: `{"name":"x","color":"red"}`, err: validators.NewValidationError("color", "Color must be a hex color"), wantStatus: http.StatusBadRequest, wantCode: app.CodeValidationError},
		{name: "duplicate", body: `{"name":"x"}`, err: service.ErrDuplicateTagName, wantStatus: http.StatusConflict, wantCode: app.CodeDuplicateName},
		{name: "database", body: `{"name":"x"}`, err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError, wantCode: app.CodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{TagService: &fakeTagService{
				createFn: func(_ context.Context, _ models.TagRequest) (models.Tag, error) {
					return models.Tag{}, tt.err
				},
			}})

			rec := serve(t, h, http.MethodPost, "/api/tags", tt.body)

			requireFailure(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestGetTag_Forbidden(t *testing.T) {
	h := newTestHandler(t, &service.Services{TagService: &fakeTagService{
		getFn: func(_ context.Context, _, _ int64) (models.Tag, error) {
			return models.Tag{}, service.ErrTagForbidden
		},
	}})

	rec := serve(t, h, http.MethodGet, "/api/tags/9", "")

	body := requireFailure(t, rec, http.StatusForbidden, app.CodeForbidden)
	assert.Equal(t, app.MsgTagForbidden, body.Message)
}
