package http

import (
	"context"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/utils"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	health   Pinger

	server config.Server
	app    config.App

	metrics  *httpMetrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. health may be nil, in which case
// /api/health reports ok without touching the database.
func NewHandler(services *service.Services, health Pinger, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		health:   health,
		server:   cfg.Server,
		app:      cfg.App,
		metrics:  newHTTPMetrics(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
