package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/models"
)

var ErrNoCredentials = errors.New("username and password are required")

type App struct {
	services    *service.ClientServices
	renderer    Renderer
	credentials config.ClientCredentials
	days        int
	out         io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, renderer Renderer, cfg *config.ClientConfig, days int, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg.Credentials.Username == "" || cfg.Credentials.Password == "" {
		return nil, ErrNoCredentials
	}

	return &App{
		services:    services,
		renderer:    renderer,
		credentials: cfg.Credentials,
		days:        days,
		out:         out,
		logger:      logger,
	}, nil
}

// Run logs in, prints the dashboard and logs out. A failure is printed
// through the renderer as well as returned.
func (a *App) Run(ctx context.Context) error {
	if err := a.run(ctx); err != nil {
		fmt.Fprintln(a.out, a.renderer.RenderError(err))
		return err
	}
	return nil
}

func (a *App) run(ctx context.Context) (err error) {
	user, err := a.services.AuthService.Login(ctx, models.LoginRequest{
		Username: a.credentials.Username,
		Password: a.credentials.Password,
	})
	if err != nil {
		return err
	}

	defer func() {
		if logoutErr := a.services.AuthService.Logout(context.WithoutCancel(ctx)); logoutErr != nil {
			a.logger.Warn().Err(logoutErr).Msg("logout failed")
		}
	}()

	dashboard, err := a.services.DashboardService.Load(ctx, a.days)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, a.renderer.Render(user, dashboard))
	return err
}
