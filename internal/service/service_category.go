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

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// CreateCategory stores a new category for req.UserID. The name must be
// unique among the user's categories; an empty color gets the default.
func (s *categoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if err := s.ensureUniqueName(ctx, req.UserID, name, 0); err != nil {
		return models.Category{}, err
	}

	category, err := s.categoryRepository.CreateCategory(ctx, models.Category{
		UserID: req.UserID,
		Name:   name,
		Color:  colorOrDefault(req.Color, models.DefaultCategoryColor),
	})
	if errors.Is(err, store.ErrDuplicateName) {
		return models.Category{}, fmt.Errorf("%w: %w", ErrDuplicateCategoryName, err)
	}
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("category creation failed")
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}

	return category, nil
}

// GetCategory returns the category when it exists and belongs to userID.
// Existence is checked before ownership.
func (s *categoryService) GetCategory(ctx context.Context, categoryID, userID int64) (models.Category, error) {
	category, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("category lookup failed: %w", err)
	}
	if category.UserID != userID {
		return models.Category{}, ErrCategoryForbidden
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}
	return categories, nil
}

// UpdateCategory applies the present fields of patch. A null or empty color
// resets it to the default.
func (s *categoryService) UpdateCategory(ctx context.Context, patch models.CategoryPatch) (models.Category, error) {
	log := logger.FromContext(ctx)

	category, err := s.GetCategory(ctx, patch.ID, patch.UserID)
	if err != nil {
		return models.Category{}, err
	}

	if name, ok := patch.Name.Get(); ok {
		category.Name = strings.TrimSpace(name)
		if err = s.ensureUniqueName(ctx, patch.UserID, category.Name, category.ID); err != nil {
			return models.Category{}, err
		}
	}
	if patch.Color.Set {
		color, _ := patch.Color.Get()
		category.Color = colorOrDefault(color, models.DefaultCategoryColor)
	}

	updated, err := s.categoryRepository.UpdateCategory(ctx, category)
	if errors.Is(err, store.ErrDuplicateName) {
		return models.Category{}, fmt.Errorf("%w: %w", ErrDuplicateCategoryName, err)
	}
	if err != nil {
		log.Err(err).Int64("category_id", category.ID).Msg("category update failed")
		return models.Category{}, fmt.Errorf("category update failed: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes the category. Its activities become uncategorized.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	if _, err := s.GetCategory(ctx, categoryID, userID); err != nil {
		return err
	}

	if err := s.categoryRepository.DeleteCategory(ctx, categoryID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("category_id", categoryID).Msg("category deletion failed")
		return fmt.Errorf("category deletion failed: %w", err)
	}
	return nil
}

func (s *categoryService) ensureUniqueName(ctx context.Context, userID int64, name string, excludeID int64) error {
	exists, err := s.categoryRepository.CategoryNameExists(ctx, userID, name, excludeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("category name lookup failed")
		return fmt.Errorf("category name lookup failed: %w", err)
	}
	if exists {
		return ErrDuplicateCategoryName
	}
	return nil
}

func colorOrDefault(color, fallback string) string {
	if color = strings.TrimSpace(color); color == "" {
		return fallback
	}
	return color
}
