// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the activity tracker REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Failure envelopes are decoded into *[APIError] values that unwrap to the
// transport errors in errors.go, so callers can use [errors.Is] on the HTTP
// status family (e.g. [ErrUnauthorized] for 401) and read the envelope code.
package adapter

import (
	"context"

	"github.com/MKhiriev/activity-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the activity tracker server.
type ServerAdapter interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string

	// Login authenticates and stores the returned session token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Logout ends the current session and forgets the token.
	Logout(ctx context.Context) error

	Overview(ctx context.Context) (models.StatsOverview, error)
	ByCategory(ctx context.Context) ([]models.CategoryStat, error)
	ByTag(ctx context.Context) ([]models.TagStat, error)
	Timeline(ctx context.Context, days int) ([]models.TimelinePoint, error)

	// Version returns the server's plain-text version string.
	Version(ctx context.Context) (string, error)
}
