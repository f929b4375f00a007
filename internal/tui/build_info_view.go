// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/activity-tracker/models"
)

func renderBuildInfo(info models.AppBuildInfo) string {
	parts := []string{
		"client " + valueOrNA(info.BuildVersion()),
		"built " + valueOrNA(info.BuildDate()),
		"commit " + valueOrNA(info.BuildCommit()),
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
