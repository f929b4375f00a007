package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
)

type categoryRepository struct {
	labels *labelStore
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] over the
// "categories" table.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		labels: &labelStore{DB: db, table: categoriesTable, notFound: ErrCategoryNotFound},
		logger: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	l, err := r.labels.create(ctx, "categoryRepository.CreateCategory", categoryToLabel(category))
	if err != nil {
		return models.Category{}, err
	}
	return labelToCategory(l), nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, categoryID int64) (models.Category, error) {
	l, err := r.labels.get(ctx, "categoryRepository.GetCategory", categoryID)
	if err != nil {
		return models.Category{}, err
	}
	return labelToCategory(l), nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	labels, err := r.labels.list(ctx, "categoryRepository.ListCategories", sq.Eq{"user_id": userID})
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(labels))
	for _, l := range labels {
		categories = append(categories, labelToCategory(l))
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	l, err := r.labels.update(ctx, "categoryRepository.UpdateCategory", categoryToLabel(category))
	if err != nil {
		return models.Category{}, err
	}
	return labelToCategory(l), nil
}

// DeleteCategory removes an owned category. Activities referencing it keep
// existing with category_id set to NULL.
func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	return r.labels.delete(ctx, "categoryRepository.DeleteCategory", categoryID, userID)
}

func (r *categoryRepository) CategoryNameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	return r.labels.nameExists(ctx, "categoryRepository.CategoryNameExists", userID, name, excludeID)
}

func categoryToLabel(c models.Category) label {
	return label{ID: c.ID, UserID: c.UserID, Name: c.Name, Color: c.Color}
}

func labelToCategory(l label) models.Category {
	return models.Category{
		ID:        l.ID,
		UserID:    l.UserID,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
