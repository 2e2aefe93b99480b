package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError  = lipgloss.Color("#EF4444")
	colorAccent = lipgloss.Color("#F59E0B")
	colorMuted  = lipgloss.Color("#6B7280")
	colorInfo   = lipgloss.Color("#7C3AED")
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	messageStyle = lipgloss.NewStyle().
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)
)
