package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/adapter"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
	"golang.org/x/sync/errgroup"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter, logger: logger}
}

func (d *clientDashboardService) Load(ctx context.Context, days int) (models.Dashboard, error) {
	if d.adapter.Token() == "" {
		return models.Dashboard{}, ErrNotLoggedIn
	}

	if days <= 0 {
		days = models.DefaultTimelineDays
	}

	var dashboard models.Dashboard
	dashboard.TimelineDays = days

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		dashboard.Overview, err = d.adapter.Overview(gctx)
		return wrapDashboardErr("overview", err)
	})
	g.Go(func() (err error) {
		dashboard.ByCategory, err = d.adapter.ByCategory(gctx)
		return wrapDashboardErr("by category", err)
	})
	g.Go(func() (err error) {
		dashboard.ByTag, err = d.adapter.ByTag(gctx)
		return wrapDashboardErr("by tag", err)
	})
	g.Go(func() (err error) {
		dashboard.Timeline, err = d.adapter.Timeline(gctx, days)
		return wrapDashboardErr("timeline", err)
	})

	if err := g.Wait(); err != nil {
		d.logger.Debug().Err(err).Msg("dashboard load failed")
		return models.Dashboard{}, err
	}

	// the version is informational only
	version, err := d.adapter.Version(ctx)
	if err != nil {
		d.logger.Debug().Err(err).Msg("server version unavailable")
		version = "unknown"
	}
	dashboard.ServerVersion = version

	return dashboard, nil
}

func wrapDashboardErr(part string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrLoadingDashboard, part, mapAdapterError(err))
}
