// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/activity-tracker/internal/adapter"
	"github.com/MKhiriev/activity-tracker/internal/app"
)

// mapAdapterError translates an adapter error into a service business error.
// Errors that carry no server envelope mean the server could not be reached.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		if errors.Is(err, adapter.ErrUnexpectedResponse) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	switch apiErr.Code {
	case app.CodeInvalidCredentials:
		return ErrInvalidCredentials
	case app.CodeInvalidSession, app.CodeUnauthorized:
		return ErrInvalidSession
	case app.CodeForbidden:
		return ErrForbidden
	case app.CodeDuplicateUsername:
		return ErrDuplicateUsername
	case app.CodeDuplicateEmail:
		return ErrDuplicateEmail
	case app.CodeDuplicateName:
		return ErrDuplicateName
	}

	return err
}
