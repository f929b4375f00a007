package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/activity-tracker/migrations"
	"github.com/MKhiriev/activity-tracker/models"
)

// Table names.
const (
	usersTable        = "users"
	sessionsTable     = "sessions"
	categoriesTable   = "categories"
	tagsTable         = "tags"
	activitiesTable   = "activities"
	activityTagsTable = "activity_tags"
)

var (
	userColumns    = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}
	sessionColumns = []string{"id", "user_id", "expires_at", "created_at"}
	labelColumns   = []string{"id", "user_id", "name", "color", "created_at", "updated_at"}

	activityColumns = []string{
		"a.id",
		"a.user_id",
		"a.category_id",
		"a.title",
		"a.description",
		"a.created_at",
		"a.updated_at",
		"c.name",
	}
)

// ─── users ──────────────────────────────────────────────────────────────────

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns("username", "email", "password_hash", "created_at", "updated_at").
		Values(user.Username, user.Email, user.PasswordHash, now, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildCountUsersQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(usersTable).
		Where(where).
		ToSql()
}

// ─── sessions ───────────────────────────────────────────────────────────────

func buildInsertSessionQuery(sb sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return sb.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.ID, session.UserID, session.ExpiresAt, session.CreatedAt).
		ToSql()
}

func buildSelectSessionQuery(sb sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return sb.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
}

func buildDeleteSessionQuery(sb sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return sb.Delete(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(sb sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return sb.Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

// ─── categories and tags ────────────────────────────────────────────────────

func buildInsertLabelQuery(sb sq.StatementBuilderType, table string, l label, now time.Time) (string, []any, error) {
	return sb.Insert(table).
		Columns("user_id", "name", "color", "created_at", "updated_at").
		Values(l.UserID, l.Name, l.Color, now, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectLabelsQuery(sb sq.StatementBuilderType, table string, where sq.Eq) (string, []any, error) {
	return sb.Select(labelColumns...).
		From(table).
		Where(where).
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func buildUpdateLabelQuery(sb sq.StatementBuilderType, table string, l label, now time.Time) (string, []any, error) {
	return sb.Update(table).
		Set("name", l.Name).
		Set("color", l.Color).
		Set("updated_at", now).
		Where(sq.Eq{"id": l.ID, "user_id": l.UserID}).
		ToSql()
}

func buildDeleteLabelQuery(sb sq.StatementBuilderType, table string, id, userID int64) (string, []any, error) {
	return sb.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildCountLabelNameQuery counts the owner's rows named name, ignoring
// excludeID (0 ignores nothing).
func buildCountLabelNameQuery(sb sq.StatementBuilderType, table string, userID int64, name string, excludeID int64) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "name": name}).
		Where(sq.NotEq{"id": excludeID}).
		ToSql()
}

// ─── activities ─────────────────────────────────────────────────────────────

func buildInsertActivityQuery(sb sq.StatementBuilderType, activity models.Activity, now time.Time) (string, []any, error) {
	return sb.Insert(activitiesTable).
		Columns("user_id", "category_id", "title", "description", "created_at", "updated_at").
		Values(activity.UserID, activity.CategoryID, activity.Title, activity.Description, now, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateActivityQuery(sb sq.StatementBuilderType, activity models.Activity, now time.Time) (string, []any, error) {
	return sb.Update(activitiesTable).
		Set("category_id", activity.CategoryID).
		Set("title", activity.Title).
		Set("description", activity.Description).
		Set("updated_at", now).
		Where(sq.Eq{"id": activity.ID, "user_id": activity.UserID}).
		ToSql()
}

func buildDeleteActivityQuery(sb sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return sb.Delete(activitiesTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildDeleteActivityTagsQuery(sb sq.StatementBuilderType, activityID int64) (string, []any, error) {
	return sb.Delete(activityTagsTable).
		Where(sq.Eq{"activity_id": activityID}).
		ToSql()
}

// buildInsertActivityTagsQuery inserts one row per distinct tag id.
// Callers must not pass an empty tagIDs.
func buildInsertActivityTagsQuery(sb sq.StatementBuilderType, activityID int64, tagIDs []int64) (string, []any, error) {
	q := sb.Insert(activityTagsTable).Columns("activity_id", "tag_id")
	for _, tagID := range uniqueIDs(tagIDs) {
		q = q.Values(activityID, tagID)
	}
	return q.ToSql()
}

// buildSelectActivitiesQuery selects activities with their category name.
//
// Category ids match with OR semantics. Tag ids match with AND semantics:
// an activity qualifies only if it carries every requested tag.
// A positive activityID restricts the result to that single row.
func buildSelectActivitiesQuery(sb sq.StatementBuilderType, filter models.ActivityFilter, activityID int64) (string, []any, error) {
	q := sb.Select(activityColumns...).
		From(activitiesTable + " a").
		LeftJoin(categoriesTable + " c ON c.id = a.category_id")

	if activityID > 0 {
		q = q.Where(sq.Eq{"a.id": activityID})
	}
	if filter.UserID > 0 {
		q = q.Where(sq.Eq{"a.user_id": filter.UserID})
	}

	if categoryIDs := uniqueIDs(filter.CategoryIDs); len(categoryIDs) > 0 {
		q = q.Where(sq.Eq{"a.category_id": categoryIDs})
	}

	if tagIDs := uniqueIDs(filter.TagIDs); len(tagIDs) > 0 {
		sub, subArgs, err := sq.Select("activity_id").
			From(activityTagsTable).
			Where(sq.Eq{"tag_id": tagIDs}).
			GroupBy("activity_id").
			Having("COUNT(DISTINCT tag_id) = ?", len(tagIDs)).
			ToSql()
		if err != nil {
			return "", nil, err
		}
		q = q.Where("a.id IN ("+sub+")", subArgs...)
	}

	return q.OrderBy("a.created_at DESC", "a.id DESC").ToSql()
}

func buildSelectActivityTagsQuery(sb sq.StatementBuilderType, activityIDs []int64) (string, []any, error) {
	return sb.Select("atg.activity_id", "t.id", "t.name").
		From(activityTagsTable + " atg").
		Join(tagsTable + " t ON t.id = atg.tag_id").
		Where(sq.Eq{"atg.activity_id": activityIDs}).
		OrderBy("t.name ASC", "t.id ASC").
		ToSql()
}

// ─── stats ──────────────────────────────────────────────────────────────────

func buildOverviewQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select().
		Column(sq.Expr("(SELECT COUNT(*) FROM "+activitiesTable+" WHERE user_id = ?)", userID)).
		Column(sq.Expr("(SELECT COUNT(*) FROM "+categoriesTable+" WHERE user_id = ?)", userID)).
		Column(sq.Expr("(SELECT COUNT(*) FROM "+tagsTable+" WHERE user_id = ?)", userID)).
		ToSql()
}

func buildCategoryBreakdownQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("c.id", "c.name", "c.color", "COUNT(a.id)").
		From(categoriesTable + " c").
		LeftJoin(activitiesTable + " a ON a.category_id = c.id").
		Where(sq.Eq{"c.user_id": userID}).
		GroupBy("c.id", "c.name", "c.color").
		OrderBy("COUNT(a.id) DESC", "c.name ASC").
		ToSql()
}

func buildUncategorizedCountQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From(activitiesTable).
		Where(sq.Eq{"user_id": userID, "category_id": nil}).
		ToSql()
}

func buildTagDistributionQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("t.id", "t.name", "t.color", "COUNT(atg.activity_id)").
		From(tagsTable + " t").
		LeftJoin(activityTagsTable + " atg ON atg.tag_id = t.id").
		Where(sq.Eq{"t.user_id": userID}).
		GroupBy("t.id", "t.name", "t.color").
		OrderBy("COUNT(atg.activity_id) DESC", "t.name ASC").
		ToSql()
}

// buildTimelineQuery groups the user's activities created at or after since
// by UTC calendar day. The day column is always rendered as YYYY-MM-DD text.
func buildTimelineQuery(sb sq.StatementBuilderType, dialect string, userID int64, since time.Time) (string, []any, error) {
	day := "TO_CHAR(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	if dialect == migrations.DialectSQLite {
		day = "DATE(created_at)"
	}

	return sb.Select(day+" AS day", "COUNT(*)").
		From(activitiesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": since}).
		GroupBy("day").
		OrderBy("day ASC").
		ToSql()
}

// uniqueIDs drops duplicates while keeping the first-seen order.
func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
