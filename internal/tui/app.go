package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/onboard/internal/config"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/f3rmion/onboard/internal/tui/views"
	"go.uber.org/zap"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewFilePicker ViewType = iota
	ViewSummary
	ViewDashboard
)

// Outcome is how the wizard's last step ended.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeBack      Outcome = "back"
	OutcomeDashboard Outcome = "dashboard"
	OutcomeQuit      Outcome = "quit"
)

// SessionLoadedMsg carries inputs read from a session file, either after a
// file picker selection or when the session watcher sees a change.
type SessionLoadedMsg struct {
	Inputs onboard.Inputs
	Path   string
	Err    error
}

// AppModel is the main TUI model. It owns navigation around the summary
// screen: in from the file picker or the command line, out to the
// Dashboard or back.
type AppModel struct {
	logger     *zap.Logger
	ctrlOpts   []onboard.ControllerOption
	fromPicker bool

	// Layout state
	width  int
	height int
	ready  bool

	currentView ViewType
	outcome     Outcome

	inputs      onboard.Inputs
	sessionPath string

	filePickerView views.FilePickerModel
	summaryView    views.SummaryModel
	dashboardView  views.DashboardModel
}

// NewApp creates an app that starts in the file picker.
func NewApp(logger *zap.Logger, dir string, opts ...onboard.ControllerOption) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return AppModel{
		logger:         logger,
		ctrlOpts:       opts,
		fromPicker:     true,
		currentView:    ViewFilePicker,
		filePickerView: views.NewFilePickerModel(dir),
	}
}

// NewAppWithSession creates an app that opens straight on the summary.
func NewAppWithSession(logger *zap.Logger, in onboard.Inputs, path string, opts ...onboard.ControllerOption) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := AppModel{
		logger:      logger,
		ctrlOpts:    opts,
		currentView: ViewSummary,
		sessionPath: path,
	}
	app.mountSummary(in)
	return app
}

// Outcome reports how the wizard ended.
func (m AppModel) Outcome() Outcome { return m.outcome }

// CurrentView returns the active view.
func (m AppModel) CurrentView() ViewType { return m.currentView }

// Summary returns the summary view.
func (m AppModel) Summary() views.SummaryModel { return m.summaryView }

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	if m.currentView == ViewFilePicker {
		return m.filePickerView.Init()
	}
	return nil
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m.quit(OutcomeQuit)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - 4
		contentHeight := m.height - 2

		m.summaryView.SetSize(contentWidth, contentHeight)
		m.dashboardView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)

		var cmd tea.Cmd
		if m.currentView == ViewFilePicker {
			m.filePickerView, cmd = m.filePickerView.Update(msg)
		}
		return m, cmd

	case views.FileSelectedMsg:
		return m, loadSession(msg.Path)

	case SessionLoadedMsg:
		return m.sessionLoaded(msg)

	case views.BackMsg:
		m.summaryView.Close()
		if m.fromPicker {
			m.currentView = ViewFilePicker
			return m, m.filePickerView.Init()
		}
		return m.quit(OutcomeBack)

	case views.DashboardMsg:
		m.summaryView.Close()
		m.outcome = OutcomeDashboard
		m.dashboardView = views.NewDashboardModel(m.summaryView.Summary())
		m.dashboardView.SetSize(m.width-4, m.height-2)
		m.currentView = ViewDashboard
		m.logger.Info("wizard finished", zap.String("outcome", string(m.outcome)))
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewFilePicker:
		m.filePickerView, cmd = m.filePickerView.Update(msg)
	case ViewSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	}

	return m, cmd
}

func (m AppModel) sessionLoaded(msg SessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("session load failed", zap.String("path", msg.Path), zap.Error(msg.Err))
		if m.currentView == ViewFilePicker {
			m.filePickerView.SetError(msg.Err)
		}
		return m, nil
	}

	m.logger.Info("session loaded", zap.String("path", msg.Path))
	m.sessionPath = msg.Path

	switch m.currentView {
	case ViewFilePicker:
		m.mountSummary(msg.Inputs)
		m.currentView = ViewSummary
	case ViewSummary:
		m.inputs = msg.Inputs
		m.summaryView.SetInputs(msg.Inputs)
	case ViewDashboard:
		m.inputs = msg.Inputs
		m.dashboardView.SetSummary(onboard.Derive(msg.Inputs))
	}
	return m, nil
}

// mountSummary replaces the summary view with a fresh one in Idle.
func (m *AppModel) mountSummary(in onboard.Inputs) {
	m.inputs = in
	m.summaryView = views.NewSummaryModel(in, m.logger, m.ctrlOpts...)
	m.summaryView.SetSize(m.width-4, m.height-2)
}

func (m AppModel) quit(outcome Outcome) (tea.Model, tea.Cmd) {
	if m.currentView == ViewSummary {
		m.summaryView.Close()
	}
	if m.outcome == OutcomeNone || outcome == OutcomeBack {
		m.outcome = outcome
	}
	m.logger.Info("quitting", zap.String("outcome", string(m.outcome)))
	return m, tea.Quit
}

// loadSession reads a session file asynchronously
func loadSession(path string) tea.Cmd {
	return func() tea.Msg {
		in, err := config.LoadSession(path)
		return SessionLoadedMsg{Inputs: in, Path: path, Err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content string
	switch m.currentView {
	case ViewFilePicker:
		content = m.filePickerView.View()
	case ViewSummary:
		content = m.summaryView.View()
	case ViewDashboard:
		content = m.dashboardView.View()
	}

	body := ContentStyle.
		Width(m.width).
		Render(content)

	if m.sessionPath == "" || m.currentView == ViewFilePicker {
		return body
	}
	footer := FooterStyle.Render("session: " + m.sessionPath)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
