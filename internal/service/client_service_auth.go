package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/adapter"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Debug().Err(err).Str("username", req.Username).Msg("login on server failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	a.logger.Debug().Int64("user_id", resp.User.ID).Time("expires_at", resp.ExpiresAt).Msg("logged in")
	return resp.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if a.adapter.Token() == "" {
		return ErrNotLoggedIn
	}

	if err := a.adapter.Logout(ctx); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
