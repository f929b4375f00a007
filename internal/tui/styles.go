package tui

import "github.com/charmbracelet/lipgloss"

const (
	defaultWidth = 80
	labelWidth   = 20
	countWidth   = 5
	minBarWidth  = 10
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Align(lipgloss.Center)
	labelStyle      = lipgloss.NewStyle().Width(labelWidth)
	countStyle      = lipgloss.NewStyle().Width(countWidth).Align(lipgloss.Right)
)
