package store

import (
	"context"
	"time"

	"github.com/MKhiriev/activity-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// SessionRepository persists opaque session tokens.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	// DeleteSession removes the session and reports whether a row existed.
	DeleteSession(ctx context.Context, sessionID string) (bool, error)
	// DeleteExpiredSessions removes every session with expires_at <= now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// CategoryRepository persists categories. Reads by id are not owner-scoped
// so that callers can tell "missing" from "foreign"; writes are.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID int64) error
	CategoryNameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
}

// TagRepository persists tags. Reads by id are not owner-scoped; writes are.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	GetTag(ctx context.Context, tagID int64) (models.Tag, error)
	// GetTags returns the tags that exist among tagIDs, in any order.
	GetTags(ctx context.Context, tagIDs []int64) ([]models.Tag, error)
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)
	UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	DeleteTag(ctx context.Context, tagID, userID int64) error
	TagNameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
}

// ActivityRepository persists activities and their tag links. Returned
// activities always carry the display fields (category name, tags).
type ActivityRepository interface {
	// CreateActivity inserts the activity and links activity.TagIDs in one
	// transaction.
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	GetActivity(ctx context.Context, activityID int64) (models.Activity, error)
	ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	// UpdateActivity overwrites the activity columns and, when replaceTags is
	// set, replaces the tag links with activity.TagIDs in the same transaction.
	UpdateActivity(ctx context.Context, activity models.Activity, replaceTags bool) (models.Activity, error)
	DeleteActivity(ctx context.Context, activityID, userID int64) error
}

// StatsRepository runs the aggregate queries behind the statistics endpoints.
type StatsRepository interface {
	Overview(ctx context.Context, userID int64) (models.StatsOverview, error)
	CategoryBreakdown(ctx context.Context, userID int64) ([]models.CategoryStat, error)
	TagDistribution(ctx context.Context, userID int64) ([]models.TagStat, error)
	Timeline(ctx context.Context, userID int64, since time.Time) ([]models.TimelinePoint, error)
}
