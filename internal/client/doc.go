// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dashboard client runtime.
//
// It logs in, loads the dashboard through the client services, prints it and
// logs out again.
package client
