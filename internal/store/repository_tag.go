package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
)

type tagRepository struct {
	labels *labelStore
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] over the "tags" table.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		labels: &labelStore{DB: db, table: tagsTable, notFound: ErrTagNotFound},
		logger: logger,
	}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	l, err := r.labels.create(ctx, "tagRepository.CreateTag", tagToLabel(tag))
	if err != nil {
		return models.Tag{}, err
	}
	return labelToTag(l), nil
}

func (r *tagRepository) GetTag(ctx context.Context, tagID int64) (models.Tag, error) {
	l, err := r.labels.get(ctx, "tagRepository.GetTag", tagID)
	if err != nil {
		return models.Tag{}, err
	}
	return labelToTag(l), nil
}

func (r *tagRepository) GetTags(ctx context.Context, tagIDs []int64) ([]models.Tag, error) {
	ids := uniqueIDs(tagIDs)
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	return r.listWhere(ctx, "tagRepository.GetTags", sq.Eq{"id": ids})
}

func (r *tagRepository) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	return r.listWhere(ctx, "tagRepository.ListTags", sq.Eq{"user_id": userID})
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	l, err := r.labels.update(ctx, "tagRepository.UpdateTag", tagToLabel(tag))
	if err != nil {
		return models.Tag{}, err
	}
	return labelToTag(l), nil
}

// DeleteTag removes an owned tag together with its activity links.
func (r *tagRepository) DeleteTag(ctx context.Context, tagID, userID int64) error {
	return r.labels.delete(ctx, "tagRepository.DeleteTag", tagID, userID)
}

func (r *tagRepository) TagNameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	return r.labels.nameExists(ctx, "tagRepository.TagNameExists", userID, name, excludeID)
}

func (r *tagRepository) listWhere(ctx context.Context, funcName string, where sq.Eq) ([]models.Tag, error) {
	labels, err := r.labels.list(ctx, funcName, where)
	if err != nil {
		return nil, err
	}

	tags := make([]models.Tag, 0, len(labels))
	for _, l := range labels {
		tags = append(tags, labelToTag(l))
	}
	return tags, nil
}

func tagToLabel(t models.Tag) label {
	return label{ID: t.ID, UserID: t.UserID, Name: t.Name, Color: t.Color}
}

func labelToTag(l label) models.Tag {
	return models.Tag{
		ID:        l.ID,
		UserID:    l.UserID,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
