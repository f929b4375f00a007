package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements its service interface by delegating to a func field
// that the test overrides. Calling an unset field panics, which the router's
// Recoverer turns into a 500 and a failing assertion.

type fakeAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	resolveSessionFn func(ctx context.Context, sessionID string) (models.User, error)
	logoutFn         func(ctx context.Context, sessionID string) error
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	return f.resolveSessionFn(ctx, sessionID)
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	return f.logoutFn(ctx, sessionID)
}

func (f *fakeAuthService) CurrentUser(ctx context.Context) (models.User, error) {
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		return models.User{}, service.ErrInvalidSession
	}
	return user, nil
}

type fakeCategoryService struct {
	createFn func(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	getFn    func(ctx context.Context, categoryID, userID int64) (models.Category, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Category, error)
	updateFn func(ctx context.Context, patch models.CategoryPatch) (models.Category, error)
	deleteFn func(ctx context.Context, categoryID, userID int64) error
}

func (f *fakeCategoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	return f.createFn(ctx, req)
}

func (f *fakeCategoryService) GetCategory(ctx context.Context, categoryID, userID int64) (models.Category, error) {
	return f.getFn(ctx, categoryID, userID)
}

func (f *fakeCategoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeCategoryService) UpdateCategory(ctx context.Context, patch models.CategoryPatch) (models.Category, error) {
	return f.updateFn(ctx, patch)
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	return f.deleteFn(ctx, categoryID, userID)
}

type fakeTagService struct {
	createFn func(ctx context.Context, req models.TagRequest) (models.Tag, error)
	getFn    func(ctx context.Context, tagID, userID int64) (models.Tag, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Tag, error)
	updateFn func(ctx context.Context, patch models.TagPatch) (models.Tag, error)
	deleteFn func(ctx context.Context, tagID, userID int64) error
}

func (f *fakeTagService) CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	return f.createFn(ctx, req)
}

func (f *fakeTagService) GetTag(ctx context.Context, tagID, userID int64) (models.Tag, error) {
	return f.getFn(ctx, tagID, userID)
}

func (f *fakeTagService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeTagService) UpdateTag(ctx context.Context, patch models.TagPatch) (models.Tag, error) {
	return f.updateFn(ctx, patch)
}

func (f *fakeTagService) DeleteTag(ctx context.Context, tagID, userID int64) error {
	return f.deleteFn(ctx, tagID, userID)
}

type fakeActivityService struct {
	createFn func(ctx context.Context, req models.ActivityRequest) (models.Activity, error)
	getFn    func(ctx context.Context, activityID, userID int64) (models.Activity, error)
	listFn   func(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	updateFn func(ctx context.Context, patch models.ActivityPatch) (models.Activity, error)
	deleteFn func(ctx context.Context, activityID, userID int64) error
}

func (f *fakeActivityService) CreateActivity(ctx context.Context, req models.ActivityRequest) (models.Activity, error) {
	return f.createFn(ctx, req)
}

func (f *fakeActivityService) GetActivity(ctx context.Context, activityID, userID int64) (models.Activity, error) {
	return f.getFn(ctx, activityID, userID)
}

func (f *fakeActivityService) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeActivityService) UpdateActivity(ctx context.Context, patch models.ActivityPatch) (models.Activity, error) {
	return f.updateFn(ctx, patch)
}

func (f *fakeActivityService) DeleteActivity(ctx context.Context, activityID, userID int64) error {
	return f.deleteFn(ctx, activityID, userID)
}

type fakeStatsService struct {
	overviewFn   func(ctx context.Context, userID int64) (models.StatsOverview, error)
	byCategoryFn func(ctx context.Context, userID int64) ([]models.CategoryStat, error)
	byTagFn      func(ctx context.Context, userID int64) ([]models.TagStat, error)
	timelineFn   func(ctx context.Context, req models.TimelineRequest) ([]models.TimelinePoint, error)
}

func (f *fakeStatsService) Overview(ctx context.Context, userID int64) (models.StatsOverview, error) {
	return f.overviewFn(ctx, userID)
}

func (f *fakeStatsService) ByCategory(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	return f.byCategoryFn(ctx, userID)
}

func (f *fakeStatsService) ByTag(ctx context.Context, userID int64) ([]models.TagStat, error) {
	return f.byTagFn(ctx, userID)
}

func (f *fakeStatsService) Timeline(ctx context.Context, req models.TimelineRequest) ([]models.TimelinePoint, error) {
	return f.timelineFn(ctx, req)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

var testUser = models.User{
	ID:        42,
	Username:  "alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{SessionTTL: time.Hour, Version: "test"},
		Server: config.Server{
			CORSAllowedOrigins: []string{"*"},
		},
	}
}

// newTestHandler fills the services the test does not care about with
// defaults. The auth fake accepts testToken only.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &fakeAuthService{resolveSessionFn: resolveTestToken}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &fakeAppInfoService{version: "test"}
	}

	return NewHandler(svcs, nil, testConfig(), logger.Nop())
}

func resolveTestToken(_ context.Context, sessionID string) (models.User, error) {
	if sessionID != testToken {
		return models.User{}, service.ErrInvalidSession
	}
	return testUser, nil
}

// serve runs one request through the full router. A non-empty body is sent
// as JSON; requests are authenticated with testToken.
func serve(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.Response with a raw data member.
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   *models.ErrorBody `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// decodeData unwraps a success envelope into T.
func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, "body: %s", rec.Body.String())

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

// requireFailure asserts a failure envelope with the given status and code.
func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *models.ErrorBody {
	t.Helper()
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())

	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
	require.NotNil(t, env.Error.Details)
	return env.Error
}
