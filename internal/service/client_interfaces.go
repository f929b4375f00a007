package service

import (
	"context"

	"github.com/MKhiriev/activity-tracker/models"
)

// ClientAuthService defines the client-side contract for opening and closing
// a server session.
type ClientAuthService interface {
	// Login authenticates against the server. The adapter keeps the returned
	// session token for later calls.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout ends the server session. Calling it without a session returns
	// ErrNotLoggedIn.
	Logout(ctx context.Context) error
}

// ClientDashboardService loads the statistics shown by the terminal client.
type ClientDashboardService interface {
	// Load fetches overview, breakdowns and the timeline of the last days
	// days in parallel. A non-positive days uses the server default.
	Load(ctx context.Context, days int) (models.Dashboard, error)
}
