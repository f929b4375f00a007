package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/models"
)

type statsService struct {
	statsRepository store.StatsRepository

	now func() time.Time

	logger *logger.Logger
}

func NewStatsService(statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *statsService) Overview(ctx context.Context, userID int64) (models.StatsOverview, error) {
	overview, err := s.statsRepository.Overview(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("overview query failed")
		return models.StatsOverview{}, fmt.Errorf("overview query failed: %w", err)
	}
	return overview, nil
}

// ByCategory returns per-category counts, zero counts included, with an
// Uncategorized bucket when some activities have no category.
func (s *statsService) ByCategory(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	stats, err := s.statsRepository.CategoryBreakdown(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("category breakdown query failed")
		return nil, fmt.Errorf("category breakdown query failed: %w", err)
	}
	return stats, nil
}

func (s *statsService) ByTag(ctx context.Context, userID int64) ([]models.TagStat, error) {
	stats, err := s.statsRepository.TagDistribution(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("tag distribution query failed")
		return nil, fmt.Errorf("tag distribution query failed: %w", err)
	}
	return stats, nil
}

// Timeline counts activities per day over the last req.Days days. A zero
// Days selects the default window.
func (s *statsService) Timeline(ctx context.Context, req models.TimelineRequest) ([]models.TimelinePoint, error) {
	days := req.Days
	if days == 0 {
		days = models.DefaultTimelineDays
	}

	since := s.now().UTC().AddDate(0, 0, -days)

	points, err := s.statsRepository.Timeline(ctx, req.UserID, since)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", req.UserID).Int("days", days).Msg("timeline query failed")
		return nil, fmt.Errorf("timeline query failed: %w", err)
	}
	return points, nil
}
