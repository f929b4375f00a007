// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/activity-tracker/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the client once and returns when it is done.
	Run(ctx context.Context) error
}

// Renderer turns a loaded dashboard or a failure into printable text.
type Renderer interface {
	Render(user models.User, dashboard models.Dashboard) string
	RenderError(err error) string
}
