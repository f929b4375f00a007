package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:       "invalid json",
			err:        fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON),
			wantStatus: http.StatusBadRequest, wantCode: app.CodeInvalidJSON, wantMessage: app.MsgInvalidJSON,
		},
		{
			name:       "invalid path id",
			err:        ErrInvalidPathID,
			wantStatus: http.StatusBadRequest, wantCode: app.CodeValidationError, wantMessage: app.MsgInvalidID,
		},
		{
			name:       "invalid id list",
			err:        fmt.Errorf("%w: %q", utils.ErrInvalidIDList, "x"),
			wantStatus: http.StatusBadRequest, wantCode: app.CodeValidationError, wantMessage: app.MsgInvalidIDList,
		},
		{
			name:       "no token",
			err:        ErrNoSessionToken,
			wantStatus: http.StatusUnauthorized, wantCode: app.CodeUnauthorized, wantMessage: app.MsgUnauthorized,
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized, wantCode: app.CodeInvalidCredentials, wantMessage: app.MsgInvalidCredentials,
		},
		{
			name:       "invalid session",
			err:        fmt.Errorf("resolve: %w", service.ErrInvalidSession),
			wantStatus: http.StatusUnauthorized, wantCode: app.CodeInvalidSession, wantMessage: app.MsgInvalidSession,
		},
		{
			name:       "category not found",
			err:        fmt.Errorf("get category: %w", store.ErrCategoryNotFound),
			wantStatus: http.StatusNotFound, wantCode: app.CodeNotFound, wantMessage: app.MsgCategoryNotFound,
		},
		{
			name:       "activity not found",
			err:        store.ErrActivityNotFound,
			wantStatus: http.StatusNotFound, wantCode: app.CodeNotFound, wantMessage: app.MsgActivityNotFound,
		},
		{
			name:       "tag forbidden",
			err:        service.ErrTagForbidden,
			wantStatus: http.StatusForbidden, wantCode: app.CodeForbidden, wantMessage: app.MsgTagForbidden,
		},
		{
			name:       "generic forbidden",
			err:        service.ErrForbidden,
			wantStatus: http.StatusForbidden, wantCode: app.CodeForbidden, wantMessage: app.MsgForbidden,
		},
		{
			name:       "duplicate username",
			err:        service.ErrDuplicateUsername,
			wantStatus: http.StatusConflict, wantCode: app.CodeDuplicateUsername, wantMessage: app.MsgDuplicateUsername,
		},
		{
			name:       "duplicate email from a race",
			err:        fmt.Errorf("%w: %w", service.ErrDuplicateEmail, store.ErrEmailTaken),
			wantStatus: http.StatusConflict, wantCode: app.CodeDuplicateEmail, wantMessage: app.MsgDuplicateEmail,
		},
		{
			name:       "duplicate category name",
			err:        fmt.Errorf("%w: %w", service.ErrDuplicateCategoryName, store.ErrDuplicateName),
			wantStatus: http.StatusConflict, wantCode: app.CodeDuplicateName, wantMessage: app.MsgDuplicateCategory,
		},
		{
			name:       "duplicate tag name",
			err:        service.ErrDuplicateTagName,
			wantStatus: http.StatusConflict, wantCode: app.CodeDuplicateName, wantMessage: app.MsgDuplicateTag,
		},
		{
			name:       "database failure",
			err:        fmt.Errorf("%w: connection reset", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError, wantCode: app.CodeDatabaseError, wantMessage: app.MsgDatabaseError,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError, wantCode: app.CodeServerError, wantMessage: app.MsgServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, details := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantCode, resp.code)
			assert.Equal(t, tt.wantMessage, resp.message)
			assert.Nil(t, details)
		})
	}
}

func TestResponseFromError_ValidationDetails(t *testing.T) {
	err := fmt.Errorf("create activity: %w", validators.NewValidationError("category_id", app.MsgInvalidCategory))

	resp, details := responseFromError(err)

	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, app.CodeValidationError, resp.code)
	assert.Equal(t, app.MsgInvalidCategory, resp.message)
	assert.Equal(t, map[string]any{"fields": map[string]any{"category_id": app.MsgInvalidCategory}}, details)
}

func TestWriteServiceError_HidesRawMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeServiceError(rec, req, fmt.Errorf("%w: pq: relation \"users\" does not exist", store.ErrExecutingQuery))

	body := requireFailure(t, rec, http.StatusInternalServerError, app.CodeDatabaseError)
	assert.Equal(t, app.MsgDatabaseError, body.Message)
	assert.NotContains(t, rec.Body.String(), "relation")
	require.Empty(t, body.Details)
}
