package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/avon/internal/keys"
	"github.com/nhle/avon/internal/theme"
)

// mouseHint describes the pointer gestures, which have no key binding.
const mouseHint = "Mouse: drag a │ handle to resize panes, click a message to open it, " +
	"click All mail / Unread to switch tabs."

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	mouse  bool
	width  int
	height int
}

// New creates a new help view model. mouse controls whether the pointer
// gestures are listed.
func New(keys *keys.KeyMap, mouse bool, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		mouse:  mouse,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Keyboard Shortcuts")

	m.help.Width = m.width - 4
	m.help.ShowAll = true
	sections := []string{title, m.help.View(m.keys)}

	if m.mouse {
		hint := theme.HelpStyle.Width(max(m.width-8, 1)).Render(mouseHint)
		sections = append(sections, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
