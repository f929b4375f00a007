package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/models"
)

type tagService struct {
	tagRepository store.TagRepository

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

func (s *tagService) CreateTag(ctx context.Context, req models.TagRequest) (models.Tag, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if err := s.ensureUniqueName(ctx, req.UserID, name, 0); err != nil {
		return models.Tag{}, err
	}

	tag, err := s.tagRepository.CreateTag(ctx, models.Tag{
		UserID: req.UserID,
		Name:   name,
		Color:  colorOrDefault(req.Color, models.DefaultTagColor),
	})
	if errors.Is(err, store.ErrDuplicateName) {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrDuplicateTagName, err)
	}
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("tag creation failed")
		return models.Tag{}, fmt.Errorf("tag creation failed: %w", err)
	}

	return tag, nil
}

func (s *tagService) GetTag(ctx context.Context, tagID, userID int64) (models.Tag, error) {
	tag, err := s.tagRepository.GetTag(ctx, tagID)
	if err != nil {
		return models.Tag{}, fmt.Errorf("tag lookup failed: %w", err)
	}
	if tag.UserID != userID {
		return models.Tag{}, ErrTagForbidden
	}
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	tags, err := s.tagRepository.ListTags(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("tag listing failed")
		return nil, fmt.Errorf("tag listing failed: %w", err)
	}
	return tags, nil
}

func (s *tagService) UpdateTag(ctx context.Context, patch models.TagPatch) (models.Tag, error) {
	log := logger.FromContext(ctx)

	tag, err := s.GetTag(ctx, patch.ID, patch.UserID)
	if err != nil {
		return models.Tag{}, err
	}

	if name, ok := patch.Name.Get(); ok {
		tag.Name = strings.TrimSpace(name)
		if err = s.ensureUniqueName(ctx, patch.UserID, tag.Name, tag.ID); err != nil {
			return models.Tag{}, err
		}
	}
	if patch.Color.Set {
		color, _ := patch.Color.Get()
		tag.Color = colorOrDefault(color, models.DefaultTagColor)
	}

	updated, err := s.tagRepository.UpdateTag(ctx, tag)
	if errors.Is(err, store.ErrDuplicateName) {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrDuplicateTagName, err)
	}
	if err != nil {
		log.Err(err).Int64("tag_id", tag.ID).Msg("tag update failed")
		return models.Tag{}, fmt.Errorf("tag update failed: %w", err)
	}

	return updated, nil
}

// DeleteTag removes the tag together with its activity links.
func (s *tagService) DeleteTag(ctx context.Context, tagID, userID int64) error {
	if _, err := s.GetTag(ctx, tagID, userID); err != nil {
		return err
	}

	if err := s.tagRepository.DeleteTag(ctx, tagID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("tag_id", tagID).Msg("tag deletion failed")
		return fmt.Errorf("tag deletion failed: %w", err)
	}
	return nil
}

func (s *tagService) ensureUniqueName(ctx context.Context, userID int64, name string, excludeID int64) error {
	exists, err := s.tagRepository.TagNameExists(ctx, userID, name, excludeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("tag name lookup failed")
		return fmt.Errorf("tag name lookup failed: %w", err)
	}
	if exists {
		return ErrDuplicateTagName
	}
	return nil
}
