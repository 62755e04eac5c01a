package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBackground = lipgloss.Color("#2c3e50")
	colorButton     = lipgloss.Color("#d2b48c")
	colorText       = lipgloss.Color("#ffffff")
	colorWarn       = lipgloss.Color("#f1c40f")
	colorError      = lipgloss.Color("#e74c3c")
	colorOK         = lipgloss.Color("#2ecc71")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorBackground).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(colorText).Width(24)
	valueStyle = lipgloss.NewStyle().Bold(true)

	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	stoppedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBackground).
			Background(colorButton).
			Padding(0, 2).
			MarginRight(2)

	infoStyle  = lipgloss.NewStyle().Foreground(colorOK)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	frameStyle = lipgloss.NewStyle().Padding(1, 2)
)
