package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	pinger := &fakePinger{}
	cfg := testConfig()

	h := NewHandler(svcs, pinger, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, pinger, h.health)
	assert.Equal(t, cfg.Server, h.server)
	assert.Equal(t, cfg.App, h.app)
	assert.NotNil(t, h.metrics)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, testConfig(), logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, testConfig(), logger.Nop())

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/auth/validate"},
	{http.MethodPost, "/api/activities"},
	{http.MethodGet, "/api/activities"},
	{http.MethodGet, "/api/activities/1"},
	{http.MethodPut, "/api/activities/1"},
	{http.MethodDelete, "/api/activities/1"},
	{http.MethodPost, "/api/categories"},
	{http.MethodGet, "/api/categories"},
	{http.MethodGet, "/api/categories/1"},
	{http.MethodPut, "/api/categories/1"},
	{http.MethodDelete, "/api/categories/1"},
	{http.MethodPost, "/api/tags"},
	{http.MethodGet, "/api/tags"},
	{http.MethodGet, "/api/tags/1"},
	{http.MethodPut, "/api/tags/1"},
	{http.MethodDelete, "/api/tags/1"},
	{http.MethodGet, "/api/stats/overview"},
	{http.MethodGet, "/api/stats/by-category"},
	{http.MethodGet, "/api/stats/by-tag"},
	{http.MethodGet, "/api/stats/timeline"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			requireFailure(t, rec, http.StatusUnauthorized, app.CodeUnauthorized)
		})
	}
}

func TestInit_UnknownRouteReturnsEnvelope(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, path := range []string{"/api/nonexistent", "/api/auth/unknown", "/nowhere"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		body := requireFailure(t, rec, http.StatusNotFound, app.CodeNotFound)
		assert.Equal(t, app.MsgRouteNotFound, body.Message)
	}
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPost, "/api/health"},
		{http.MethodGet, "/api/auth/logout"},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		requireFailure(t, rec, http.StatusMethodNotAllowed, app.CodeMethodNotAllowed)
	}
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h := newTestHandler(t, &service.Services{StatsService: &fakeStatsService{}})

	rec := serve(t, h, http.MethodGet, "/api/stats/overview", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/activities", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_AuthRateLimit(t *testing.T) {
	svcs := &service.Services{
		AuthService: &fakeAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResponse, error) {
				return models.LoginResponse{}, service.ErrInvalidCredentials
			},
		},
		AppInfoService: &fakeAppInfoService{},
	}
	cfg := testConfig()
	cfg.Server.AuthRateLimit = 2
	cfg.Server.AuthRateWindow = time.Minute
	router := NewHandler(svcs, nil, cfg, logger.Nop()).Init()

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"a","password":"b"}`))
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

// ─────────────────────────────────────────────
// /metrics
// ─────────────────────────────────────────────

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		CategoryService: &fakeCategoryService{
			getFn: func(_ context.Context, categoryID, userID int64) (models.Category, error) {
				return models.Category{ID: categoryID, UserID: userID}, nil
			},
		},
	})

	for _, id := range []string{"7", "8"} {
		rec := serve(t, h, http.MethodGet, "/api/categories/"+id, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/categories/{id}",status="200"} 2`)
	assert.Contains(t, body, "http_request_duration_seconds")
}

// ─────────────────────────────────────────────
// /api/health and /api/version
// ─────────────────────────────────────────────

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
	}{
		{name: "no pinger", pinger: nil, wantStatus: http.StatusOK},
		{name: "database up", pinger: &fakePinger{}, wantStatus: http.StatusOK},
		{name: "database down", pinger: &fakePinger{err: errors.New("refused")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, tt.pinger, testConfig(), logger.Nop())
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if tt.wantStatus != http.StatusOK {
				requireFailure(t, rec, tt.wantStatus, app.CodeServiceUnavailable)
				return
			}
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, healthStatus{Status: "ok"}, decodeData[healthStatus](t, rec))
		})
	}
}

func TestGetServerVersion_PlainText(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{version: "1.2.3"}})
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}
