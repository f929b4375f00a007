package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
)

type statsRepository struct {
	*DB
	logger *logger.Logger
}

// NewStatsRepository constructs a [StatsRepository].
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

// Overview counts the user's activities, categories and tags in one query.
func (s *statsRepository) Overview(ctx context.Context, userID int64) (models.StatsOverview, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOverviewQuery(s.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.Overview").Msg("failed to build query")
		return models.StatsOverview{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var overview models.StatsOverview
	err = s.QueryRowContext(ctx, query, args...).Scan(
		&overview.TotalActivities,
		&overview.TotalCategories,
		&overview.TotalTags,
	)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.Overview").Int64("user_id", userID).Msg("failed to scan overview")
		return models.StatsOverview{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return overview, nil
}

// CategoryBreakdown returns every category of the user with its activity
// count, zero counts included. Activities without a category are reported
// as a synthetic Uncategorized entry when there is at least one. The result
// is ordered by count descending, then name ascending.
func (s *statsRepository) CategoryBreakdown(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCategoryBreakdownQuery(s.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.CategoryBreakdown").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.CategoryBreakdown").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.CategoryStat, 0, 16)
	for rows.Next() {
		var (
			stat       models.CategoryStat
			categoryID int64
		)
		if err = rows.Scan(&categoryID, &stat.CategoryName, &stat.CategoryColor, &stat.ActivityCount); err != nil {
			log.Err(err).Str("func", "statsRepository.CategoryBreakdown").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stat.CategoryID = &categoryID
		stats = append(stats, stat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	query, args, err = buildUncategorizedCountQuery(s.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var uncategorized int64
	if err = s.QueryRowContext(ctx, query, args...).Scan(&uncategorized); err != nil {
		log.Err(err).Str("func", "statsRepository.CategoryBreakdown").Msg("failed to count uncategorized activities")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if uncategorized > 0 {
		stats = append(stats, models.CategoryStat{
			CategoryName:  models.UncategorizedName,
			CategoryColor: models.UncategorizedColor,
			ActivityCount: uncategorized,
		})
	}

	// Names compare byte-wise whatever the database collation is.
	slices.SortStableFunc(stats, func(a, b models.CategoryStat) int {
		return cmp.Or(
			cmp.Compare(b.ActivityCount, a.ActivityCount),
			cmp.Compare(a.CategoryName, b.CategoryName),
		)
	})

	return stats, nil
}

// TagDistribution returns every tag of the user with the number of
// activities carrying it, ordered by count descending, then name ascending.
func (s *statsRepository) TagDistribution(ctx context.Context, userID int64) ([]models.TagStat, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTagDistributionQuery(s.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.TagDistribution").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.TagDistribution").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.TagStat, 0, 16)
	for rows.Next() {
		var stat models.TagStat
		if err = rows.Scan(&stat.TagID, &stat.TagName, &stat.TagColor, &stat.ActivityCount); err != nil {
			log.Err(err).Str("func", "statsRepository.TagDistribution").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stats = append(stats, stat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

// Timeline returns per-day activity counts for activities created at or
// after since. Days without activities are omitted.
func (s *statsRepository) Timeline(ctx context.Context, userID int64, since time.Time) ([]models.TimelinePoint, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTimelineQuery(s.builder, s.dialect, userID, since.UTC().Truncate(time.Microsecond))
	if err != nil {
		log.Err(err).Str("func", "statsRepository.Timeline").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "statsRepository.Timeline").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	points := make([]models.TimelinePoint, 0, 31)
	for rows.Next() {
		var point models.TimelinePoint
		if err = rows.Scan(&point.Date, &point.Count); err != nil {
			log.Err(err).Str("func", "statsRepository.Timeline").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		points = append(points, point)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return points, nil
}
