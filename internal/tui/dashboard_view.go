package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/activity-tracker/models"
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(user models.User, serverVersion string, width int) string {
	left := titleStyle.Render("Activity Tracker") + "  " + helpStyle.Render("@"+user.Username)
	right := helpStyle.Render("server " + valueOrNA(serverVersion))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderOverview(o models.StatsOverview) string {
	card := func(label string, value int64) string {
		return cardStyle.Render(titleStyle.Render(fmt.Sprint(value)) + "\n" + helpStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("activities", o.TotalActivities),
		" ",
		card("categories", o.TotalCategories),
		" ",
		card("tags", o.TotalTags),
	)
}

func renderCategoryBreakdown(stats []models.CategoryStat, width int) string {
	var max int64
	for _, s := range stats {
		max = maxInt64(max, s.ActivityCount)
	}

	rows := make([]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, barRow(s.CategoryName, s.ActivityCount, max, width, s.CategoryColor))
	}
	return renderSection("By category", strings.Join(rows, "\n"))
}

func renderTagBreakdown(stats []models.TagStat, width int) string {
	var max int64
	for _, s := range stats {
		max = maxInt64(max, s.ActivityCount)
	}

	rows := make([]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, barRow("#"+s.TagName, s.ActivityCount, max, width, s.TagColor))
	}
	return renderSection("By tag", strings.Join(rows, "\n"))
}

// renderTimeline lists only the days that have activities.
func renderTimeline(points []models.TimelinePoint, days, width int) string {
	var max int64
	for _, p := range points {
		max = maxInt64(max, p.Count)
	}

	rows := make([]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, barRow(p.Date, p.Count, max, width, ""))
	}
	return renderSection(fmt.Sprintf("Last %d days", days), strings.Join(rows, "\n"))
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
