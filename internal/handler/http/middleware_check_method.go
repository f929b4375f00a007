// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/utils"
)

// notFound answers unknown routes with a NOT_FOUND envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, app.MsgRouteNotFound, nil)
}

// methodNotAllowed answers a known route hit with an unregistered method.
// chi has already set the Allow header.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusMethodNotAllowed, app.CodeMethodNotAllowed, app.MsgMethodNotAllowed, nil)
}
