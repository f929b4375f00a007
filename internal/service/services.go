package service

import (
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
)

// Services groups the server-side services. Services that accept user input
// are wrapped with their validation decorators.
type Services struct {
	AuthService     AuthService
	CategoryService CategoryService
	TagService      TagService
	ActivityService ActivityService
	StatsService    StatsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger)
	categoryService := NewCategoryService(storages.CategoryRepository, logger)
	tagService := NewTagService(storages.TagRepository, logger)
	activityService := NewActivityService(storages.ActivityRepository, storages.CategoryRepository, storages.TagRepository, logger)
	statsService := NewStatsService(storages.StatsRepository, logger)

	return &Services{
		AuthService:     NewAuthValidationService().Wrap(authService),
		CategoryService: NewCategoryValidationService().Wrap(categoryService),
		TagService:      NewTagValidationService().Wrap(tagService),
		ActivityService: NewActivityValidationService().Wrap(activityService),
		StatsService:    NewStatsValidationService().Wrap(statsService),
		AppInfoService:  appInfoService,
	}, nil
}
