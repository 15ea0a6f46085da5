// Package tui provides the interactive terminal UI for the onboarding
// wizard's summary step.
package tui

import "github.com/charmbracelet/lipgloss"

// ColorMuted is the gray used for secondary text.
var ColorMuted = lipgloss.Color("#666666")

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)

// FooterStyle renders the session path under the active view.
var FooterStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Italic(true).
	Padding(0, 2)
