package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// e2eClient drives the full stack: router, services and an in-memory SQLite
// database.
type e2eClient struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newE2EClient(t *testing.T) *e2eClient {
	t.Helper()

	cfg := testConfig()
	cfg.App.BcryptCost = 4
	cfg.Storage = config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	return &e2eClient{t: t, router: NewHandler(services, storages, cfg, logger.Nop()).Init()}
}

func (c *e2eClient) do(method, target string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var payload string
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		payload = string(raw)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

func (c *e2eClient) login(username, password string) {
	c.t.Helper()

	rec := c.do(http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	c.token = decodeData[models.LoginResponse](c.t, rec).SessionID
	require.Len(c.t, c.token, 64)
}

func (c *e2eClient) register(username string) models.User {
	c.t.Helper()

	rec := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeData[models.User](c.t, rec)
}

func TestE2E_ActivityLifecycle(t *testing.T) {
	c := newE2EClient(t)

	user := c.register("alice")
	assert.Positive(t, user.ID)

	// anonymous access
	requireFailure(t, c.do(http.MethodGet, "/api/activities", nil), http.StatusUnauthorized, app.CodeUnauthorized)

	c.login("alice", "secret1")

	rec := c.do(http.MethodGet, "/api/auth/validate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, decodeData[models.User](t, rec).ID)

	// categories and tags
	rec = c.do(http.MethodPost, "/api/categories", map[string]string{"name": "Work"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	work := decodeData[models.Category](t, rec)
	assert.Equal(t, models.DefaultCategoryColor, work.Color)

	requireFailure(t, c.do(http.MethodPost, "/api/categories", map[string]string{"name": "Work"}), http.StatusConflict, app.CodeDuplicateName)

	rec = c.do(http.MethodPost, "/api/tags", map[string]string{"name": "urgent"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	urgent := decodeData[models.Tag](t, rec)

	rec = c.do(http.MethodPost, "/api/tags", map[string]string{"name": "deep"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	deep := decodeData[models.Tag](t, rec)

	// activities
	rec = c.do(http.MethodPost, "/api/activities", map[string]any{
		"title":       "Write report",
		"category_id": work.ID,
		"tag_ids":     []int64{urgent.ID, deep.ID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	report := decodeData[models.Activity](t, rec)
	require.NotNil(t, report.CategoryID)
	assert.Equal(t, work.ID, *report.CategoryID)
	assert.ElementsMatch(t, []int64{urgent.ID, deep.ID}, report.TagIDs)

	rec = c.do(http.MethodPost, "/api/activities", map[string]any{"title": "Walk", "tag_ids": []int64{urgent.ID}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	walk := decodeData[models.Activity](t, rec)
	assert.Nil(t, walk.CategoryID)

	requireFailure(t, c.do(http.MethodPost, "/api/activities", map[string]any{"title": "   "}), http.StatusBadRequest, app.CodeValidationError)

	// filters
	rec = c.do(http.MethodGet, fmt.Sprintf("/api/activities?tag_ids=%d,%d", urgent.ID, deep.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	both := decodeData[[]models.Activity](t, rec)
	require.Len(t, both, 1)
	assert.Equal(t, report.ID, both[0].ID)

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/activities?tag_ids=%d", urgent.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.Activity](t, rec), 2)

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/activities?category_ids=%d", work.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]models.Activity](t, rec), 1)

	// stats
	rec = c.do(http.MethodGet, "/api/stats/overview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatsOverview{TotalActivities: 2, TotalCategories: 1, TotalTags: 2}, decodeData[models.StatsOverview](t, rec))

	rec = c.do(http.MethodGet, "/api/stats/timeline?days=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	points := decodeData[[]models.TimelinePoint](t, rec)
	require.NotEmpty(t, points)
	var total int64
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, int64(2), total)

	// deleting the category keeps the activity uncategorized
	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", work.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/activities/%d", report.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeData[models.Activity](t, rec).CategoryID)

	// partial update: clear the tags, keep the title
	rec = c.do(http.MethodPut, fmt.Sprintf("/api/activities/%d", report.ID), map[string]any{"tag_ids": []int64{}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeData[models.Activity](t, rec)
	assert.Equal(t, "Write report", updated.Title)
	assert.Empty(t, updated.TagIDs)

	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/activities/%d", walk.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	requireFailure(t, c.do(http.MethodGet, fmt.Sprintf("/api/activities/%d", walk.ID), nil), http.StatusNotFound, app.CodeNotFound)
}

func TestE2E_Isolation(t *testing.T) {
	c := newE2EClient(t)

	c.register("alice")
	c.register("bob")

	c.login("alice", "secret1")
	rec := c.do(http.MethodPost, "/api/categories", map[string]string{"name": "Private"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	private := decodeData[models.Category](t, rec)

	c.login("bob", "secret1")
	requireFailure(t, c.do(http.MethodGet, fmt.Sprintf("/api/categories/%d", private.ID), nil), http.StatusForbidden, app.CodeForbidden)
	requireFailure(t, c.do(http.MethodPost, "/api/activities", map[string]any{"title": "x", "category_id": private.ID}), http.StatusForbidden, app.CodeForbidden)

	rec = c.do(http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))

	// same name is fine for another owner
	rec = c.do(http.MethodPost, "/api/categories", map[string]string{"name": "Private"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestE2E_AuthFailures(t *testing.T) {
	c := newE2EClient(t)

	c.register("alice")
	requireFailure(t, c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice", "email": "other@example.com", "password": "secret1",
	}), http.StatusConflict, app.CodeDuplicateUsername)
	requireFailure(t, c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice2", "email": "alice@example.com", "password": "secret1",
	}), http.StatusConflict, app.CodeDuplicateEmail)

	requireFailure(t, c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "wrong-password",
	}), http.StatusUnauthorized, app.CodeInvalidCredentials)

	c.login("alice", "secret1")

	rec := c.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// the session is gone
	requireFailure(t, c.do(http.MethodPost, "/api/auth/logout", nil), http.StatusUnauthorized, app.CodeInvalidSession)
	requireFailure(t, c.do(http.MethodGet, "/api/stats/overview", nil), http.StatusUnauthorized, app.CodeInvalidSession)
}

func TestE2E_RegisterInputEdges(t *testing.T) {
	c := newE2EClient(t)

	tests := []struct {
		name  string
		body  map[string]string
		field string
	}{
		{
			name:  "password longer than bcrypt accepts",
			body:  map[string]string{"username": "alice", "email": "alice@example.com", "password": strings.Repeat("p", 80)},
			field: "password",
		},
		{
			name:  "multibyte password over 72 bytes",
			body:  map[string]string{"username": "alice", "email": "alice@example.com", "password": strings.Repeat("€", 30)},
			field: "password",
		},
		{
			name:  "username short after trimming",
			body:  map[string]string{"username": "  ab  ", "email": "ab@example.com", "password": "secret1"},
			field: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := requireFailure(t, c.do(http.MethodPost, "/api/auth/register", tt.body), http.StatusBadRequest, app.CodeValidationError)
			assert.Contains(t, body.Details["fields"], tt.field)
		})
	}

	rec := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "  bob  ", "email": " bob@example.com ", "password": strings.Repeat("p", 72),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "bob", decodeData[models.User](t, rec).Username)

	c.login(" bob ", strings.Repeat("p", 72))
}

func TestE2E_Health(t *testing.T) {
	c := newE2EClient(t)

	rec := c.do(http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, healthStatus{Status: "ok"}, decodeData[healthStatus](t, rec))
}

