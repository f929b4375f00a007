// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced at the HTTP boundary before a request reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the auth middleware when none of the
	// supported token carriers holds a session token.
	ErrNoSessionToken = errors.New("no session token in request")

	// ErrInvalidPathID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrInvalidDays is returned when the days query parameter of the
	// timeline is not an integer.
	ErrInvalidDays = errors.New("invalid days parameter")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json body")
)
