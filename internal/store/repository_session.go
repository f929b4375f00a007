package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	session.ExpiresAt = session.ExpiresAt.UTC().Truncate(time.Microsecond)
	session.CreatedAt = session.CreatedAt.UTC().Truncate(time.Microsecond)

	query, args, err := buildInsertSessionQuery(s.builder, session)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.CreateSession").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) FindSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery(s.builder, sessionID)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.FindSession").Msg("failed to build query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = s.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if isNoRows(err) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.FindSession").Msg("failed to scan session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context, sessionID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(s.builder, sessionID)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (s *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(s.builder, now.UTC().Truncate(time.Microsecond))
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("failed to delete expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "sessionRepository.DeleteExpiredSessions").
		Int64("deleted", affected).
		Msg("expired sessions removed")

	return affected, nil
}
