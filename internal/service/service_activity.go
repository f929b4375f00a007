// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/internal/validators"
	"github.com/MKhiriev/activity-tracker/models"
)

// activityService owns activity CRUD. Every category and tag an activity
// refers to is checked for existence and ownership before any write.
type activityService struct {
	activityRepository store.ActivityRepository
	categoryRepository store.CategoryRepository
	tagRepository      store.TagRepository

	logger *logger.Logger
}

func NewActivityService(
	activityRepository store.ActivityRepository,
	categoryRepository store.CategoryRepository,
	tagRepository store.TagRepository,
	logger *logger.Logger,
) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		categoryRepository: categoryRepository,
		tagRepository:      tagRepository,
		logger:             logger,
	}
}

// CreateActivity stores a new activity with its tag links in one transaction.
// A missing, null or zero category_id means "no category".
func (s *activityService) CreateActivity(ctx context.Context, req models.ActivityRequest) (models.Activity, error) {
	log := logger.FromContext(ctx)

	categoryID, err := s.resolveCategory(ctx, req.CategoryID, req.UserID)
	if err != nil {
		return models.Activity{}, err
	}

	tagIDs, err := s.resolveTags(ctx, req.TagIDs, req.UserID)
	if err != nil {
		return models.Activity{}, err
	}

	activity, err := s.activityRepository.CreateActivity(ctx, models.Activity{
		UserID:      req.UserID,
		CategoryID:  categoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TagIDs:      tagIDs,
	})
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("activity creation failed")
		return models.Activity{}, fmt.Errorf("activity creation failed: %w", err)
	}

	return activity, nil
}

// GetActivity returns the activity when it exists and belongs to userID.
func (s *activityService) GetActivity(ctx context.Context, activityID, userID int64) (models.Activity, error) {
	activity, err := s.activityRepository.GetActivity(ctx, activityID)
	if err != nil {
		return models.Activity{}, fmt.Errorf("activity lookup failed: %w", err)
	}
	if activity.UserID != userID {
		return models.Activity{}, ErrActivityForbidden
	}
	return activity, nil
}

// ListActivities returns the user's activities, newest first. Category ids
// match with OR, tag ids with AND.
func (s *activityService) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	activities, err := s.activityRepository.ListActivities(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", filter.UserID).Msg("activity listing failed")
		return nil, fmt.Errorf("activity listing failed: %w", err)
	}
	return activities, nil
}

// UpdateActivity applies the present fields of patch. A present tag_ids
// replaces the whole tag set.
func (s *activityService) UpdateActivity(ctx context.Context, patch models.ActivityPatch) (models.Activity, error) {
	log := logger.FromContext(ctx)

	activity, err := s.GetActivity(ctx, patch.ID, patch.UserID)
	if err != nil {
		return models.Activity{}, err
	}

	if title, ok := patch.Title.Get(); ok {
		activity.Title = strings.TrimSpace(title)
	}
	if patch.Description.Set {
		activity.Description, _ = patch.Description.Get()
	}
	if patch.CategoryID.Set {
		if activity.CategoryID, err = s.resolveCategory(ctx, patch.CategoryID, patch.UserID); err != nil {
			return models.Activity{}, err
		}
	}

	replaceTags := patch.TagIDs.Set
	if replaceTags {
		ids, _ := patch.TagIDs.Get()
		if activity.TagIDs, err = s.resolveTags(ctx, ids, patch.UserID); err != nil {
			return models.Activity{}, err
		}
	}

	updated, err := s.activityRepository.UpdateActivity(ctx, activity, replaceTags)
	if err != nil {
		log.Err(err).Int64("activity_id", activity.ID).Msg("activity update failed")
		return models.Activity{}, fmt.Errorf("activity update failed: %w", err)
	}

	return updated, nil
}

// DeleteActivity removes the activity together with its tag links.
func (s *activityService) DeleteActivity(ctx context.Context, activityID, userID int64) error {
	if _, err := s.GetActivity(ctx, activityID, userID); err != nil {
		return err
	}

	if err := s.activityRepository.DeleteActivity(ctx, activityID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("activity_id", activityID).Msg("activity deletion failed")
		return fmt.Errorf("activity deletion failed: %w", err)
	}
	return nil
}

// resolveCategory returns the category id to store, or nil for "no category".
func (s *activityService) resolveCategory(ctx context.Context, ref models.Optional[int64], userID int64) (*int64, error) {
	categoryID, ok := ref.Get()
	if !ok || categoryID == 0 {
		return nil, nil
	}

	category, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return nil, validators.NewValidationError("category_id", app.MsgInvalidCategory)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("category_id", categoryID).Msg("category lookup failed")
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}
	if category.UserID != userID {
		return nil, ErrCategoryForbidden
	}

	return &category.ID, nil
}

// resolveTags deduplicates ids and checks that each tag exists and belongs
// to userID. The first offending id, in request order, is reported.
func (s *activityService) resolveTags(ctx context.Context, ids []int64, userID int64) ([]int64, error) {
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return unique, nil
	}

	tags, err := s.tagRepository.GetTags(ctx, unique)
	if err != nil {
		logger.FromContext(ctx).Err(err).Ints64("tag_ids", unique).Msg("tag lookup failed")
		return nil, fmt.Errorf("tag lookup failed: %w", err)
	}

	owners := make(map[int64]int64, len(tags))
	for _, tag := range tags {
		owners[tag.ID] = tag.UserID
	}

	for _, id := range unique {
		owner, found := owners[id]
		if !found {
			return nil, validators.NewValidationError("tag_ids", app.MsgInvalidTagPrefix+strconv.FormatInt(id, 10))
		}
		if owner != userID {
			return nil, ErrTagForbidden
		}
	}

	return unique, nil
}
