// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/robfig/cron/v3"
)

var errInvalidInterval = errors.New("sweep interval must be at least one second")

// sweepTimeout bounds a single DeleteExpiredSessions call.
const sweepTimeout = 30 * time.Second

// SessionSweeper periodically deletes expired sessions. Expired sessions are
// already rejected on lookup, so the sweeper only reclaims storage.
type SessionSweeper struct {
	sessions store.SessionRepository
	cron     *cron.Cron
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) (*SessionSweeper, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("%w: %s", errInvalidInterval, interval)
	}

	s := &SessionSweeper{
		sessions: sessions,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		now:      time.Now,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", int(interval.Seconds())), s.sweep); err != nil {
		return nil, fmt.Errorf("error scheduling session sweep: %w", err)
	}

	return s, nil
}

func (s *SessionSweeper) Run() {
	s.logger.Info().Msg("session sweeper started")
	s.cron.Start()
}

func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("session sweeper stopped")
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		s.logger.Err(err).Msg("error deleting expired sessions")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
