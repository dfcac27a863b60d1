package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/avon/internal/keys"
	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/selection"
	"github.com/nhle/avon/internal/theme"
)

// headerHeight is the number of lines above the scrolling body.
const headerHeight = 5

// DismissedMsg signals that the detail view cleared the selection.
type DismissedMsg struct{}

// Model is the message detail view component.
type Model struct {
	message  *model.Message
	viewport viewport.Model
	sel      *selection.Store
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new detail view model.
func New(sel *selection.Store, keys *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, max(height-headerHeight, 0))
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		sel:      sel,
		keys:     keys,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		m.sel.Clear()
		return m, func() tea.Msg {
			return DismissedMsg{}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.message == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No message selected")
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View()))
}

// renderHeader draws the sender block: initials, name, subject, reply-to
// and date.
func (m Model) renderHeader() string {
	msg := m.message
	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Background(theme.ColorSubtle).
		Padding(0, 1).
		Render(Initials(msg.Name))

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	who := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(msg.Name),
		msg.Subject,
		fmt.Sprintf("%s %s", metaStyle.Render("Reply-To:"), msg.Email),
	)
	left := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", who)

	date := ""
	if !msg.Date.IsZero() {
		date = metaStyle.Render(msg.Date.Format("Jan 2, 2006, 3:04:05 PM"))
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(date), 1)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), date)

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(m.width, 0)))

	return lipgloss.JoinVertical(lipgloss.Left, top, "", separator)
}

// renderBody wraps the message text to the pane width.
func (m Model) renderBody() string {
	if m.message == nil {
		return ""
	}
	return lipgloss.NewStyle().Width(max(m.width, 1)).Render(m.message.Text)
}

// SetMessage updates the message being displayed. A nil message shows the
// empty placeholder. The scroll position resets only when the message
// changes.
func (m *Model) SetMessage(msg *model.Message) {
	same := msg != nil && m.message != nil && msg.ID == m.message.ID
	m.message = msg
	m.viewport.SetContent(m.renderBody())
	if !same {
		m.viewport.GotoTop()
	}
}

// Message returns the displayed message, or nil.
func (m Model) Message() *model.Message {
	return m.message
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-headerHeight, 0)
	m.viewport.SetContent(m.renderBody())
}

// Initials returns the first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
