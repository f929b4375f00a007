package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/assert"
)

func testDashboard() models.Dashboard {
	work := int64(1)
	return models.Dashboard{
		ServerVersion: "1.4.0",
		Overview:      models.StatsOverview{TotalActivities: 6, TotalCategories: 2, TotalTags: 3},
		ByCategory: []models.CategoryStat{
			{CategoryID: &work, CategoryName: "Work", CategoryColor: "#FFD700", ActivityCount: 4},
			{CategoryName: "Uncategorized", CategoryColor: "#CCCCCC", ActivityCount: 2},
		},
		ByTag:        []models.TagStat{{TagID: 1, TagName: "urgent", ActivityCount: 3}},
		Timeline:     []models.TimelinePoint{{Date: "2026-03-13", Count: 2}, {Date: "2026-03-14", Count: 4}},
		TimelineDays: 7,
	}
}

func TestRender_ContainsEverySection(t *testing.T) {
	ui := New(100, models.NewAppBuildInfo("0.9.0", "2026-03-01", "abc123"))

	out := ui.Render(models.User{Username: "alice"}, testDashboard())

	for _, want := range []string{
		"Activity Tracker", "@alice", "server 1.4.0",
		"activities", "categories", "tags",
		"By category", "Work", "Uncategorized",
		"By tag", "#urgent",
		"Last 7 days", "2026-03-13", "2026-03-14",
		"client 0.9.0", "commit abc123",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_EmptyDashboard(t *testing.T) {
	ui := New(0, models.AppBuildInfo{})

	out := ui.Render(models.User{Username: "bob"}, models.Dashboard{TimelineDays: 30})

	assert.Contains(t, out, "Last 30 days")
	assert.Contains(t, out, "server N/A")
	assert.Contains(t, out, "client N/A")
	assert.Contains(t, out, "-")
}

func TestBar_ScalesToMax(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		max   int64
		width int
		want  int
	}{
		{name: "full", value: 10, max: 10, width: 20, want: 20},
		{name: "half", value: 5, max: 10, width: 20, want: 10},
		{name: "tiny value gets a cell", value: 1, max: 1000, width: 20, want: 1},
		{name: "zero", value: 0, max: 10, width: 20, want: 0},
		{name: "no max", value: 3, max: 0, width: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings.Count(bar(tt.value, tt.max, tt.width, ""), barRune))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "a very...", fitText("a very long label", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "Свид...", fitText("Свидание вслепую", 7))
}

func TestBarWidth_HasMinimum(t *testing.T) {
	assert.Equal(t, minBarWidth, New(10, models.AppBuildInfo{}).barWidth())
	assert.Equal(t, 100-labelWidth-countWidth-8, New(100, models.AppBuildInfo{}).barWidth())
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "credentials", err: fmt.Errorf("%w: %w", service.ErrLoginOnServer, service.ErrInvalidCredentials), want: "Invalid username or password"},
		{name: "session", err: service.ErrInvalidSession, want: "Session expired, log in again"},
		{name: "server down", err: service.ErrServerUnavailable, want: "Network is down or the server is unavailable"},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: "Network is down or the server is unavailable"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestRenderError(t *testing.T) {
	out := New(80, models.AppBuildInfo{}).RenderError(service.ErrServerUnavailable)

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "server is unavailable")
}
