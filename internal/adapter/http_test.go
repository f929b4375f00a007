// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, resp models.Response) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func writeFailure(t *testing.T, w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(t, w, status, models.Response{
		Error: &models.ErrorBody{Code: code, Message: message, Details: map[string]any{}},
	})
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.LoginResponse{
			SessionID: testToken,
			User:      models.User{ID: 7, Username: "alice"},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.User.ID)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(t, w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Empty(t, a.Token())
}

func TestLogin_EmptySessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.LoginResponse{}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_SendsBearerAndForgetsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.MessageResponse{Message: "ok"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

// ── Stats ───────────────────────────────────────────────────────────────────

func TestOverview_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/overview", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.StatsOverview{
			TotalActivities: 5, TotalCategories: 2, TotalTags: 3,
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	got, err := a.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.StatsOverview{TotalActivities: 5, TotalCategories: 2, TotalTags: 3}, got)
}

func TestByCategoryAndByTag_Success(t *testing.T) {
	catID := int64(3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stats/by-category":
			writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: []models.CategoryStat{
				{CategoryID: &catID, CategoryName: "Work", ActivityCount: 2},
				{CategoryName: "Uncategorized", ActivityCount: 1},
			}})
		case "/api/stats/by-tag":
			writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: []models.TagStat{
				{TagID: 1, TagName: "urgent", ActivityCount: 4},
			}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	byCategory, err := a.ByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, int64(3), *byCategory[0].CategoryID)
	assert.Nil(t, byCategory[1].CategoryID)

	byTag, err := a.ByTag(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "urgent", byTag[0].TagName)
}

func TestTimeline_DaysQuery(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantDays string
	}{
		{name: "explicit", days: 7, wantDays: "7"},
		{name: "server default", days: 0, wantDays: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantDays, r.URL.Query().Get("days"))
				writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: []models.TimelinePoint{
					{Date: "2026-03-14", Count: 2},
				}})
			}))
			defer srv.Close()

			points, err := newTestAdapter(t, srv.URL).Timeline(context.Background(), tt.days)

			require.NoError(t, err)
			assert.Equal(t, []models.TimelinePoint{{Date: "2026-03-14", Count: 2}}, points)
		})
	}
}

func TestStats_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, code: "UNAUTHORIZED", wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, code: "VALIDATION_ERROR", wantErr: ErrBadRequest},
		{name: "server error", status: http.StatusInternalServerError, code: "DATABASE_ERROR", wantErr: ErrInternalServerError},
		{name: "teapot", status: http.StatusTeapot, code: "", wantErr: ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeFailure(t, w, tt.status, tt.code, "boom")
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Overview(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ByTag(context.Background())

	require.ErrorIs(t, err, ErrBadGateway)
	assert.Equal(t, "http 502: upstream down", err.Error())
}

func TestDecodeData_NotAnEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Overview(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://tracker.example.com/", want: "https://tracker.example.com"},
		{name: "spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
