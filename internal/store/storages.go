package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
)

// Storages groups every repository of the server into a single value that
// can be passed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	CategoryRepository CategoryRepository
	TagRepository      TagRepository
	ActivityRepository ActivityRepository
	StatsRepository    StatsRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires all repositories on an already opened and migrated
// connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		TagRepository:      NewTagRepository(db, logger),
		ActivityRepository: NewActivityRepository(db, logger),
		StatsRepository:    NewStatsRepository(db, logger),
		db:                 db,
	}
}

// Ping checks that the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
