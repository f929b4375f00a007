// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before the services act on them.
//
// Struct-shaped requests carry `validate` tags and are checked with
// go-playground/validator; messages are translated into short human readable
// sentences. Every failure is a *ValidationError, which unwraps to
// ErrValidation and carries per-field details for the error envelope.
package validators

import "context"

// Validator validates arbitrary input values. Implementations may restrict
// validation to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
