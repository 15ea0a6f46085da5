package views

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/onboard/internal/config"
)

// FileSelectedMsg is sent when a file is selected
type FileSelectedMsg struct {
	Path string
}

// File picker styles
var (
	fpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginBottom(1)

	fpHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	fpErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)
)

// FilePickerModel lets the user choose a session document when none was
// given on the command line.
type FilePickerModel struct {
	picker filepicker.Model
	err    error

	width  int
	height int
}

// NewFilePickerModel creates a file picker for session documents starting
// in dir. An empty dir starts in the working directory.
func NewFilePickerModel(dir string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir == "" {
		dir, _ = os.UserHomeDir()
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = config.SessionExtensions
	fp.ShowPermissions = false

	return FilePickerModel{picker: fp}
}

// Init reads the starting directory.
func (m FilePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows err above the listing, e.g. after a failed load.
func (m *FilePickerModel) SetError(err error) {
	m.err = err
}

// Err returns the error currently shown.
func (m FilePickerModel) Err() error { return m.err }

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string { return m.picker.CurrentDirectory }

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.err = nil
		return m, tea.Batch(cmd, func() tea.Msg {
			return FileSelectedMsg{Path: path}
		})
	}

	return m, cmd
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(fpTitleStyle.Render("Select Session (" + strings.Join(config.SessionExtensions, " ") + ")"))
	b.WriteString("\n")
	b.WriteString(fpPathStyle.Render(m.picker.CurrentDirectory))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fpErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(fpHelpStyle.Render("enter: select • backspace: parent • q: quit"))

	return b.String()
}
