package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/onboard/internal/onboard"
)

// Dashboard view styles
var (
	dashTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	dashLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(14)

	dashValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	dashHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// DashboardModel is the screen the wizard lands on when it is finished.
type DashboardModel struct {
	summary onboard.Summary

	width  int
	height int
}

// NewDashboardModel creates a dashboard for a finished wizard.
func NewDashboardModel(s onboard.Summary) DashboardModel {
	return DashboardModel{summary: s}
}

// SetSize updates the view dimensions.
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSummary replaces the summary shown.
func (m *DashboardModel) SetSummary(s onboard.Summary) {
	m.summary = s
}

// Update handles messages. The dashboard has no controls of its own.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	s := m.summary
	var b strings.Builder

	b.WriteString(dashTitleStyle.Render("Dashboard"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(dashLabelStyle.Render(label))
		b.WriteString(dashValueStyle.Render(value))
		b.WriteString("\n")
	}

	business := s.Industry
	if s.HasCategory() {
		business += " · " + s.Category
	}
	row("Business", business)

	language := s.Language
	if s.HasLocation() {
		language += " · " + s.Location
	}
	row("Language", language)

	row("Keywords", joinOr(s.Keywords, "none"))
	row("Competitors", joinOr(s.Competitors, "none"))

	b.WriteString(dashHelpStyle.Render("q: quit"))
	return b.String()
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
