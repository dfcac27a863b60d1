package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/avon/internal/theme"
)

// Name identifies a palette command.
type Name string

const (
	Collapse    Name = "collapse"
	Expand      Name = "expand"
	ResetLayout Name = "reset layout"
	ShowAll     Name = "all"
	ShowUnread  Name = "unread"
	Mailbox     Name = "mailbox"
	JobTracker  Name = "jobs"
	Spreadsheet Name = "sheet"
	Preferences Name = "prefs"
	Quit        Name = "quit"
)

// commands lists every palette command with its one-line description,
// in display order.
var commands = []struct {
	name Name
	desc string
}{
	{Collapse, "collapse the navigation rail"},
	{Expand, "expand the navigation rail"},
	{ResetLayout, "restore the default pane sizes"},
	{ShowAll, "list all mail"},
	{ShowUnread, "list unread mail"},
	{Mailbox, "switch to the mailbox"},
	{JobTracker, "switch to the job tracker"},
	{Spreadsheet, "switch to the spreadsheet"},
	{Preferences, "edit layout preferences"},
	{Quit, "quit avon"},
}

// CommandMsg is emitted when the user executes a known command.
type CommandMsg Name

// UnknownMsg is emitted when the input matches no command.
type UnknownMsg string

// Parse resolves input to a command. A unique prefix is enough.
func Parse(input string) (Name, bool) {
	input = strings.ToLower(strings.Join(strings.Fields(input), " "))
	if input == "" {
		return "", false
	}

	var match Name
	n := 0
	for _, c := range commands {
		if string(c.name) == input {
			return c.name, true
		}
		if strings.HasPrefix(string(c.name), input) {
			match = c.name
			n++
		}
	}
	return match, n == 1
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if raw == "" {
				return m, nil
			}
			if name, ok := Parse(raw); ok {
				return m, func() tea.Msg {
					return CommandMsg(name)
				}
			}
			return m, func() tea.Msg {
				return UnknownMsg(raw)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette with the commands matching the
// current input.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Command Palette")
	input := m.input.View()

	typed := strings.ToLower(strings.TrimSpace(m.input.Value()))
	var rows []string
	for _, c := range commands {
		if typed != "" && !strings.HasPrefix(string(c.name), typed) {
			continue
		}
		rows = append(rows,
			lipgloss.NewStyle().Width(14).Foreground(theme.ColorBlue).Render(string(c.name))+
				theme.DimmedStyle.Render(c.desc))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, input, "", strings.Join(rows, "\n"))

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
