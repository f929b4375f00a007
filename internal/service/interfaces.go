package service

import (
	"context"

	"github.com/MKhiriev/activity-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and manages their sessions.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	// ResolveSession returns the owner of a live session. Expired sessions
	// are deleted on the way.
	ResolveSession(ctx context.Context, sessionID string) (models.User, error)
	// Logout deletes the session. An unknown or expired token is an error.
	Logout(ctx context.Context, sessionID string) error
	// CurrentUser returns the user resolved for the request context.
	CurrentUser(ctx context.Context) (models.User, error)
}

// CategoryService manages the caller's categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	GetCategory(ctx context.Context, categoryID, userID int64) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	UpdateCategory(ctx context.Context, patch models.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID int64) error
}

// TagService manages the caller's tags.
type TagService interface {
	CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error)
	GetTag(ctx context.Context, tagID, userID int64) (models.Tag, error)
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)
	UpdateTag(ctx context.Context, patch models.TagPatch) (models.Tag, error)
	DeleteTag(ctx context.Context, tagID, userID int64) error
}

// ActivityService manages the caller's activities.
type ActivityService interface {
	CreateActivity(ctx context.Context, req models.ActivityRequest) (models.Activity, error)
	GetActivity(ctx context.Context, activityID, userID int64) (models.Activity, error)
	ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	UpdateActivity(ctx context.Context, patch models.ActivityPatch) (models.Activity, error)
	DeleteActivity(ctx context.Context, activityID, userID int64) error
}

// StatsService computes the caller's aggregate statistics.
type StatsService interface {
	Overview(ctx context.Context, userID int64) (models.StatsOverview, error)
	ByCategory(ctx context.Context, userID int64) ([]models.CategoryStat, error)
	ByTag(ctx context.Context, userID int64) ([]models.TagStat, error)
	Timeline(ctx context.Context, req models.TimelineRequest) ([]models.TimelinePoint, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
