package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/onboard/internal/clipboard"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/f3rmion/onboard/internal/tui/wave"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

// Summary view styles
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f1faee"))

	summarySubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc"))

	summaryEmphasisStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f1faee"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	cardIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	cardValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	cardMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Background(lipgloss.Color("#2d3436")).
			Padding(0, 1)

	backButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 2)

	dashboardButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1a1a2e")).
				Background(lipgloss.Color("#ffe66d")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ffe66d")).
				Padding(0, 3)

	loaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	summaryHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				MarginTop(1)

	summaryCopiedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8e6cf")).
				Bold(true)

	summaryErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ff6b6b")).
				Bold(true)
)

const (
	minCardWidth  = 24
	cardGap       = 1
	loaderCols    = 12
	loaderRows    = 5
	frameInterval = 80 * time.Millisecond
)

// BackMsg is sent when the user leaves the summary with Back.
type BackMsg struct{}

// DashboardMsg is sent once the loading delay has passed after the user
// pressed Dashboard.
type DashboardMsg struct{}

type dashboardDueMsg struct {
	ticket onboard.Ticket
}

type summaryFrameMsg struct{}

type summaryCopiedMsg struct {
	err error
}

type summaryClearCopiedMsg struct{}

func dashboardAfter(t onboard.Ticket, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dashboardDueMsg{ticket: t}
	})
}

func summaryNextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return summaryFrameMsg{}
	})
}

func summaryClearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return summaryClearCopiedMsg{}
	})
}

// outbox carries the controller's callback out of Update as a message.
// Each action triggers at most one callback.
type outbox struct {
	msg tea.Msg
}

func (o *outbox) put(msg tea.Msg) { o.msg = msg }

func (o *outbox) take() tea.Cmd {
	if o.msg == nil {
		return nil
	}
	msg := o.msg
	o.msg = nil
	return func() tea.Msg { return msg }
}

// SummaryModel is the wizard's final summary screen.
type SummaryModel struct {
	inputs  onboard.Inputs
	summary onboard.Summary

	ctrl   *onboard.Controller
	events *outbox
	logger *zap.Logger

	spinner  spinner.Model
	progress progress.Model

	copied  bool
	copyErr error

	width  int
	height int
}

// NewSummaryModel creates a summary screen in the Idle state.
func NewSummaryModel(in onboard.Inputs, logger *zap.Logger, opts ...onboard.ControllerOption) SummaryModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	events := &outbox{}
	ctrl := onboard.NewController(
		func() { events.put(BackMsg{}) },
		func() { events.put(DashboardMsg{}) },
		opts...,
	)

	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(loaderStyle),
	)
	p := progress.New(
		progress.WithSolidFill("#4ecdc4"),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)

	return SummaryModel{
		inputs:   in,
		summary:  onboard.Derive(in),
		ctrl:     ctrl,
		events:   events,
		logger:   logger,
		spinner:  s,
		progress: p,
	}
}

// SetSize updates the view dimensions.
func (m *SummaryModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	w := width - 8
	if w > 56 {
		w = 56
	}
	if w < 10 {
		w = 10
	}
	m.progress.Width = w
}

// SetInputs replaces the inputs and re-derives the summary. The transition
// state is untouched.
func (m *SummaryModel) SetInputs(in onboard.Inputs) {
	m.inputs = in
	m.summary = onboard.Derive(in)
}

// Summary returns the derived display values.
func (m SummaryModel) Summary() onboard.Summary { return m.summary }

// State returns the transition state.
func (m SummaryModel) State() onboard.TransitionState { return m.ctrl.State() }

// Pending returns the scheduled Dashboard completion, if any.
func (m SummaryModel) Pending() (onboard.Ticket, bool) { return m.ctrl.Pending() }

// Close tears the screen down, cancelling a pending Dashboard completion.
// It reports whether one was pending.
func (m SummaryModel) Close() bool {
	if m.ctrl == nil {
		return false
	}
	hadPending := m.ctrl.Close()
	if hadPending {
		m.logger.Debug("summary closed with pending dashboard completion")
	}
	return hadPending
}

// Update handles messages.
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ctrl.State() != onboard.Idle {
			// no controls while loading
			return m, nil
		}
		switch msg.String() {
		case "b", "esc", "left", "h", "backspace":
			m.ctrl.Back()
			return m, m.events.take()
		case "enter", "d", "right", "l":
			return m.startDashboard()
		case "y":
			text := m.summary.Text()
			return m, func() tea.Msg {
				return summaryCopiedMsg{err: clipboard.Write(text)}
			}
		}

	case dashboardDueMsg:
		if m.ctrl.Fire(msg.ticket) {
			m.logger.Info("dashboard ready", zap.Uint64("ticket", msg.ticket.ID))
			return m, m.events.take()
		}
		if p, ok := m.ctrl.Pending(); ok && p.ID == msg.ticket.ID {
			// delivered early; wait out the rest
			return m, dashboardAfter(p, m.ctrl.Remaining())
		}
		return m, nil

	case summaryFrameMsg:
		if m.animating() {
			return m, summaryNextFrame()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.animating() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case summaryCopiedMsg:
		m.copied = msg.err == nil
		m.copyErr = msg.err
		return m, summaryClearCopiedAfter(2 * time.Second)

	case summaryClearCopiedMsg:
		m.copied = false
		m.copyErr = nil
		return m, nil
	}

	return m, nil
}

func (m SummaryModel) startDashboard() (SummaryModel, tea.Cmd) {
	ticket, ok := m.ctrl.Dashboard()
	if !ok {
		return m, nil
	}

	m.logger.Info("preparing dashboard",
		zap.Uint64("ticket", ticket.ID),
		zap.Duration("delay", ticket.Delay),
	)

	return m, tea.Batch(
		dashboardAfter(ticket, ticket.Delay),
		m.spinner.Tick,
		summaryNextFrame(),
	)
}

func (m SummaryModel) animating() bool {
	return m.ctrl.State() == onboard.Loading && !m.ctrl.Closed()
}

// View renders the summary screen.
func (m SummaryModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var sections []string

	sections = append(sections,
		summaryTitleStyle.Render("Great! You're all done."),
		summarySubtitleStyle.Render("Here is your ")+
			summaryEmphasisStyle.Render("entire report")+
			summarySubtitleStyle.Render(" based on your input"),
		"",
		m.renderCards(width),
		"",
	)

	if m.ctrl.State() == onboard.Loading {
		sections = append(sections, m.renderLoading())
	} else {
		sections = append(sections, m.renderActions())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

// cardLayout picks the grid columns and card width for the available space.
func cardLayout(width int) (cols, cardWidth int) {
	for _, cols := range []int{4, 2} {
		cw := (width - cardGap*(cols-1)) / cols
		if cw >= minCardWidth {
			return cols, cw
		}
	}
	if width < minCardWidth {
		return 1, minCardWidth
	}
	return 1, width
}

func (m SummaryModel) renderCards(width int) string {
	s := m.summary
	cols, cardWidth := cardLayout(width)
	inner := cardWidth - 4 // border + padding

	var business []string
	business = append(business, cardValueStyle.Render(truncateCell(s.Industry, inner)))
	if s.HasCategory() {
		business = append(business, renderChips([]string{s.Category}, inner))
	}

	language := []string{cardValueStyle.Render(truncateCell(s.Language, inner))}
	if s.HasLocation() {
		language = append(language, renderChips([]string{s.Location}, inner))
	}

	keywords := []string{renderChips(s.Keywords, inner)}

	competitors := []string{cardValueStyle.Render(truncateCell(s.Industry, inner))}
	if len(s.Competitors) == 0 {
		competitors = append(competitors, cardMutedStyle.Render("No competitors selected"))
	} else {
		competitors = append(competitors, renderChips(s.Competitors, inner))
	}

	cards := []string{
		renderCard("◆", "Business Selected", business, cardWidth),
		renderCard("文", "Language Selected", language, cardWidth),
		renderCard("#", "Keyword Selected", keywords, cardWidth),
		renderCard("◆", "Competitors Selected", competitors, cardWidth),
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		row := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, cards[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(icon, title string, body []string, width int) string {
	inner := width - 4
	header := cardIconStyle.Render(icon) + " " + cardTitleStyle.Render(title)
	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3d5a80")).
		Render(strings.Repeat("─", inner))

	lines := append([]string{header, divider}, body...)
	return cardStyle.
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderChips lays chips out left to right, wrapping at width.
func renderChips(items []string, width int) string {
	if len(items) == 0 {
		return ""
	}

	var lines []string
	var line string
	for _, item := range items {
		chip := chipStyle.Render(truncateCell(item, width-2))
		switch {
		case line == "":
			line = chip
		case lipgloss.Width(line)+1+lipgloss.Width(chip) <= width:
			line += " " + chip
		default:
			lines = append(lines, line)
			line = chip
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func truncateCell(s string, width int) string {
	if width <= 1 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func (m SummaryModel) renderActions() string {
	prompt := summarySubtitleStyle.Render("All set? Press ") +
		summaryEmphasisStyle.Render("'Dashboard'") +
		summarySubtitleStyle.Render(" to continue.")

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		backButtonStyle.Render("← Back"),
		"  ",
		dashboardButtonStyle.Render("Dashboard →"),
	)

	lines := []string{prompt, "", buttons}

	switch {
	case m.copied:
		lines = append(lines, summaryCopiedStyle.Render("Copied report to clipboard"))
	case m.copyErr != nil:
		lines = append(lines, summaryErrorStyle.Render("Copy failed: "+m.copyErr.Error()))
	}

	lines = append(lines, summaryHelpStyle.Render("b: back • enter: dashboard • y: copy report • q: quit"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m SummaryModel) renderLoading() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		cardValueStyle.Render("Great things take time!"),
		summarySubtitleStyle.Render("Preparing your ")+
			summaryEmphasisStyle.Render("Dashboard")+
			summarySubtitleStyle.Render("."),
		"",
		loaderStyle.Render(wave.Frame(m.ctrl.Elapsed(), loaderCols, loaderRows)),
		"",
		m.spinner.View()+" "+m.progress.ViewAs(m.ctrl.Progress()),
	)
}
