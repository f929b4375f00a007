package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/validators"
	"github.com/MKhiriev/activity-tracker/models"
)

// CategoryValidationService validates category payloads before they reach
// the wrapped CategoryService.
type CategoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
}

func NewCategoryValidationService() CategoryServiceWrapper {
	return &CategoryValidationService{validator: validators.NewRequestValidator()}
}

func (v *CategoryValidationService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Category{}, fmt.Errorf("error during category validation: %w", err)
	}
	return v.inner.CreateCategory(ctx, req)
}

func (v *CategoryValidationService) GetCategory(ctx context.Context, categoryID, userID int64) (models.Category, error) {
	return v.inner.GetCategory(ctx, categoryID, userID)
}

func (v *CategoryValidationService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return v.inner.ListCategories(ctx, userID)
}

func (v *CategoryValidationService) UpdateCategory(ctx context.Context, patch models.CategoryPatch) (models.Category, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Category{}, fmt.Errorf("error during category validation: %w", err)
	}
	return v.inner.UpdateCategory(ctx, patch)
}

func (v *CategoryValidationService) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	return v.inner.DeleteCategory(ctx, categoryID, userID)
}

func (v *CategoryValidationService) Wrap(wrapped CategoryService) CategoryService {
	v.inner = wrapped
	return v
}

// TagValidationService validates tag payloads before they reach the wrapped
// TagService.
type TagValidationService struct {
	inner     TagService
	validator validators.Validator
}

func NewTagValidationService() TagServiceWrapper {
	return &TagValidationService{validator: validators.NewRequestValidator()}
}

func (v *TagValidationService) CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Tag{}, fmt.Errorf("error during tag validation: %w", err)
	}
	return v.inner.CreateTag(ctx, req)
}

func (v *TagValidationService) GetTag(ctx context.Context, tagID, userID int64) (models.Tag, error) {
	return v.inner.GetTag(ctx, tagID, userID)
}

func (v *TagValidationService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	return v.inner.ListTags(ctx, userID)
}

func (v *TagValidationService) UpdateTag(ctx context.Context, patch models.TagPatch) (models.Tag, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Tag{}, fmt.Errorf("error during tag validation: %w", err)
	}
	return v.inner.UpdateTag(ctx, patch)
}

func (v *TagValidationService) DeleteTag(ctx context.Context, tagID, userID int64) error {
	return v.inner.DeleteTag(ctx, tagID, userID)
}

func (v *TagValidationService) Wrap(wrapped TagService) TagService {
	v.inner = wrapped
	return v
}

// ActivityValidationService validates activity payloads before they reach
// the wrapped ActivityService.
type ActivityValidationService struct {
	inner     ActivityService
	validator validators.Validator
}

func NewActivityValidationService() ActivityServiceWrapper {
	return &ActivityValidationService{validator: validators.NewRequestValidator()}
}

func (v *ActivityValidationService) CreateActivity(ctx context.Context, req models.ActivityRequest) (models.Activity, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Activity{}, fmt.Errorf("error during activity validation: %w", err)
	}
	return v.inner.CreateActivity(ctx, req)
}

func (v *ActivityValidationService) GetActivity(ctx context.Context, activityID, userID int64) (models.Activity, error) {
	return v.inner.GetActivity(ctx, activityID, userID)
}

func (v *ActivityValidationService) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	return v.inner.ListActivities(ctx, filter)
}

func (v *ActivityValidationService) UpdateActivity(ctx context.Context, patch models.ActivityPatch) (models.Activity, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Activity{}, fmt.Errorf("error during activity validation: %w", err)
	}
	return v.inner.UpdateActivity(ctx, patch)
}

func (v *ActivityValidationService) DeleteActivity(ctx context.Context, activityID, userID int64) error {
	return v.inner.DeleteActivity(ctx, activityID, userID)
}

func (v *ActivityValidationService) Wrap(wrapped ActivityService) ActivityService {
	v.inner = wrapped
	return v
}

// StatsValidationService validates the timeline window before it reaches the
// wrapped StatsService.
type StatsValidationService struct {
	inner     StatsService
	validator validators.Validator
}

func NewStatsValidationService() StatsServiceWrapper {
	return &StatsValidationService{validator: validators.NewRequestValidator()}
}

func (v *StatsValidationService) Overview(ctx context.Context, userID int64) (models.StatsOverview, error) {
	return v.inner.Overview(ctx, userID)
}

func (v *StatsValidationService) ByCategory(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	return v.inner.ByCategory(ctx, userID)
}

func (v *StatsValidationService) ByTag(ctx context.Context, userID int64) ([]models.TagStat, error) {
	return v.inner.ByTag(ctx, userID)
}

func (v *StatsValidationService) Timeline(ctx context.Context, req models.TimelineRequest) ([]models.TimelinePoint, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during timeline validation: %w", err)
	}
	return v.inner.Timeline(ctx, req)
}

func (v *StatsValidationService) Wrap(wrapped StatsService) StatsService {
	v.inner = wrapped
	return v
}
