// Package tui renders the activity dashboard for the terminal client.
package tui

import (
	"strings"

	"github.com/MKhiriev/activity-tracker/models"
)

// TUI renders dashboards into strings for a terminal of the given width.
type TUI struct {
	width     int
	buildInfo models.AppBuildInfo
}

// New returns a renderer. A non-positive width falls back to defaultWidth.
func New(width int, buildInfo models.AppBuildInfo) *TUI {
	if width <= 0 {
		width = defaultWidth
	}
	return &TUI{width: width, buildInfo: buildInfo}
}

// Render returns the full dashboard page for the logged-in user.
func (t *TUI) Render(user models.User, dashboard models.Dashboard) string {
	sections := []string{
		renderHeader(user, dashboard.ServerVersion, t.width),
		renderOverview(dashboard.Overview),
		renderCategoryBreakdown(dashboard.ByCategory, t.barWidth()),
		renderTagBreakdown(dashboard.ByTag, t.barWidth()),
		renderTimeline(dashboard.Timeline, dashboard.TimelineDays, t.barWidth()),
		renderBuildInfo(t.buildInfo),
	}
	return appStyle.Render(strings.Join(sections, "\n\n"))
}

// RenderError returns a one-box error page.
func (t *TUI) RenderError(err error) string {
	return overlayBoxStyle.Render(errorStyle.Render("Error: ") + humanizeServerUnavailableError(err))
}

func (t *TUI) barWidth() int {
	w := t.width - labelWidth - countWidth - 8
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}
