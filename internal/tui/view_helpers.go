package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

const barRune = "█"

func viewTitle(title string) string {
	return fmt.Sprintf("%s\n%s", titleStyle.Render(title), uiDivider)
}

// renderSection renders a titled block; an empty body is shown as "-".
func renderSection(title, body string) string {
	if strings.TrimSpace(body) == "" {
		body = helpStyle.Render("-")
	}
	return viewTitle(title) + "\n" + body
}

// bar renders a horizontal bar of value scaled against max. Any non-zero
// value gets at least one cell.
func bar(value, max int64, width int, color string) string {
	if max <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	cells := int(value * int64(width) / max)
	if cells == 0 {
		cells = 1
	}

	style := lipgloss.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style.Render(strings.Repeat(barRune, cells))
}

// barRow renders "label  count bar".
func barRow(label string, value, max int64, width int, color string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(fitText(label, labelWidth-1)),
		countStyle.Render(fmt.Sprint(value)),
		" ",
		bar(value, max, width, color),
	)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
