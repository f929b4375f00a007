package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/activity-tracker/internal/logger"
)

// label is the row shape shared by categories and tags.
type label struct {
	ID        int64
	UserID    int64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// labelStore implements the owner-scoped name/color CRUD shared by the
// "categories" and "tags" tables.
type labelStore struct {
	*DB
	table    string
	notFound error
}

func (s *labelStore) create(ctx context.Context, funcName string, l label) (label, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	query, args, err := buildInsertLabelQuery(s.builder, s.table, l, now)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.QueryRowContext(ctx, query, args...).Scan(&l.ID); err != nil {
		if _, ok := s.uniqueViolation(err); ok {
			log.Warn().Str("func", funcName).Int64("user_id", l.UserID).Msg("duplicate name")
			return label{}, ErrDuplicateName
		}
		log.Err(err).Str("func", funcName).Int64("user_id", l.UserID).Msg("failed to insert row")
		return label{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	l.CreatedAt = now
	l.UpdatedAt = now
	return l, nil
}

func (s *labelStore) get(ctx context.Context, funcName string, id int64) (label, error) {
	labels, err := s.list(ctx, funcName, sq.Eq{"id": id})
	if err != nil {
		return label{}, err
	}
	if len(labels) == 0 {
		return label{}, s.notFound
	}
	return labels[0], nil
}

func (s *labelStore) list(ctx context.Context, funcName string, where sq.Eq) ([]label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLabelsQuery(s.builder, s.table, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	labels := make([]label, 0, 16)
	for rows.Next() {
		var l label
		if err = rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Color, &l.CreatedAt, &l.UpdatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		labels = append(labels, l)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return labels, nil
}

// update overwrites name and color of an owned row and returns the stored row.
func (s *labelStore) update(ctx context.Context, funcName string, l label) (label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLabelQuery(s.builder, s.table, l, s.now())
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		if _, ok := s.uniqueViolation(err); ok {
			log.Warn().Str("func", funcName).Int64("id", l.ID).Msg("duplicate name")
			return label{}, ErrDuplicateName
		}
		log.Err(err).Str("func", funcName).Int64("id", l.ID).Msg("failed to update row")
		return label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = requireAffected(result, s.notFound); err != nil {
		return label{}, err
	}

	return s.get(ctx, funcName, l.ID)
}

func (s *labelStore) delete(ctx context.Context, funcName string, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLabelQuery(s.builder, s.table, id, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to delete row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, s.notFound)
}

func (s *labelStore) nameExists(ctx context.Context, funcName string, userID int64, name string, excludeID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountLabelNameQuery(s.builder, s.table, userID, name, excludeID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = s.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to count names")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// requireAffected turns "zero rows affected" into notFound.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
