// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
)

// activityRepository is the SQL implementation of [ActivityRepository].
//
// Listing never issues per-row lookups: activities are read with their
// category name in one LEFT JOIN query and the tags of the whole page are
// loaded with one batched query.
type activityRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository].
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateActivity inserts the activity row and its tag links inside a single
// transaction, then reads the stored activity back with display fields.
func (a *activityRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	log := logger.FromContext(ctx)

	var activityID int64
	err := a.runOnce(ctx, "activityRepository.CreateActivity", func() error {
		tx, err := a.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).
				Str("func", "activityRepository.CreateActivity").
				Int64("user_id", activity.UserID).
				Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		query, args, err := buildInsertActivityQuery(a.builder, activity, a.now())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&activityID); err != nil {
			log.Err(err).
				Str("func", "activityRepository.CreateActivity").
				Int64("user_id", activity.UserID).
				Msg("failed to insert activity")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err = a.insertTags(ctx, tx, activityID, activity.TagIDs); err != nil {
			return err
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).
				Str("func", "activityRepository.CreateActivity").
				Int64("user_id", activity.UserID).
				Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
		return nil
	})
	if err != nil {
		return models.Activity{}, err
	}

	log.Info().
		Str("func", "activityRepository.CreateActivity").
		Int64("user_id", activity.UserID).
		Int64("activity_id", activityID).
		Int("tags", len(activity.TagIDs)).
		Msg("activity created")

	return a.GetActivity(ctx, activityID)
}

// GetActivity returns a single activity with display fields or
// [ErrActivityNotFound]. It is not owner-scoped.
func (a *activityRepository) GetActivity(ctx context.Context, activityID int64) (models.Activity, error) {
	activities, err := a.queryActivities(ctx, "activityRepository.GetActivity", models.ActivityFilter{}, activityID)
	if err != nil {
		return models.Activity{}, err
	}
	if len(activities) == 0 {
		return models.Activity{}, ErrActivityNotFound
	}
	return activities[0], nil
}

// ListActivities returns the owner's activities matching filter, newest
// first.
func (a *activityRepository) ListActivities(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	return a.queryActivities(ctx, "activityRepository.ListActivities", filter, 0)
}

// UpdateActivity overwrites title, description and category of an owned
// activity. When replaceTags is set the tag links are cleared and re-inserted
// in the same transaction.
func (a *activityRepository) UpdateActivity(ctx context.Context, activity models.Activity, replaceTags bool) (models.Activity, error) {
	log := logger.FromContext(ctx)

	err := a.runOnce(ctx, "activityRepository.UpdateActivity", func() error {
		tx, err := a.DB.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).
				Str("func", "activityRepository.UpdateActivity").
				Int64("activity_id", activity.ID).
				Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		query, args, err := buildUpdateActivityQuery(a.builder, activity, a.now())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "activityRepository.UpdateActivity").
				Int64("activity_id", activity.ID).
				Msg("failed to update activity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = requireAffected(result, ErrActivityNotFound); err != nil {
			return err
		}

		if replaceTags {
			query, args, err = buildDeleteActivityTagsQuery(a.builder, activity.ID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "activityRepository.UpdateActivity").
					Int64("activity_id", activity.ID).
					Msg("failed to clear activity tags")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			if err = a.insertTags(ctx, tx, activity.ID, activity.TagIDs); err != nil {
				return err
			}
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).
				Str("func", "activityRepository.UpdateActivity").
				Int64("activity_id", activity.ID).
				Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
		return nil
	})
	if err != nil {
		return models.Activity{}, err
	}

	return a.GetActivity(ctx, activity.ID)
}

// DeleteActivity removes an owned activity; its tag links cascade.
func (a *activityRepository) DeleteActivity(ctx context.Context, activityID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteActivityQuery(a.builder, activityID, userID)
	if err != nil {
		log.Err(err).Str("func", "activityRepository.DeleteActivity").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := a.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "activityRepository.DeleteActivity").
			Int64("activity_id", activityID).
			Msg("failed to delete activity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrActivityNotFound)
}

func (a *activityRepository) insertTags(ctx context.Context, tx *sql.Tx, activityID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query, args, err := buildInsertActivityTagsQuery(a.builder, activityID, tagIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "activityRepository.insertTags").
			Int64("activity_id", activityID).
			Int("tags", len(tagIDs)).
			Msg("failed to insert activity tags")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (a *activityRepository) queryActivities(ctx context.Context, funcName string, filter models.ActivityFilter, activityID int64) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActivitiesQuery(a.builder, filter, activityID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", filter.UserID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0, 50)
	for rows.Next() {
		var (
			item         models.Activity
			categoryID   sql.NullInt64
			categoryName sql.NullString
		)

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&categoryID,
			&item.Title,
			&item.Description,
			&item.CreatedAt,
			&item.UpdatedAt,
			&categoryName,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan activity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if categoryID.Valid {
			item.CategoryID = &categoryID.Int64
		}
		if categoryName.Valid {
			item.CategoryName = &categoryName.String
		}
		item.TagIDs = []int64{}
		item.Tags = []models.TagRef{}

		activities = append(activities, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if err = a.attachTags(ctx, funcName, activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// attachTags fills TagIDs and Tags of every activity with one query.
func (a *activityRepository) attachTags(ctx context.Context, funcName string, activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(activities))
	index := make(map[int64]int, len(activities))
	for i, activity := range activities {
		ids = append(ids, activity.ID)
		index[activity.ID] = i
	}

	query, args, err := buildSelectActivityTagsQuery(a.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to load activity tags")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			activityID int64
			tag        models.TagRef
		)
		if err = rows.Scan(&activityID, &tag.ID, &tag.Name); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan activity tag row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		i, ok := index[activityID]
		if !ok {
			continue
		}
		activities[i].TagIDs = append(activities[i].TagIDs, tag.ID)
		activities[i].Tags = append(activities[i].Tags, tag)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
