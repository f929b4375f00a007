package service

import (
	"github.com/MKhiriev/activity-tracker/internal/adapter"
	"github.com/MKhiriev/activity-tracker/internal/logger"
)

type ClientServices struct {
	AuthService      ClientAuthService
	DashboardService ClientDashboardService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(serverAdapter, logger),
		DashboardService: NewClientDashboardService(serverAdapter, logger),
	}
}
