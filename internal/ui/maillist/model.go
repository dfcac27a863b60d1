// Package maillist renders message summaries and turns a chosen row into
// a selection.
package maillist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/nhle/avon/internal/keys"
	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/selection"
	"github.com/nhle/avon/internal/theme"
)

// RowHeight is the number of lines each message occupies.
const RowHeight = 4

// snippetRunes caps how much of the body is considered for the preview.
const snippetRunes = 300

// SelectedMsg is emitted after a row has been written to the selection
// store.
type SelectedMsg struct {
	ID string
}

// Model is the message list component. Messages are shown in the order
// given; the cursor and offset only scroll the rows that fit.
type Model struct {
	messages []model.Message
	sel      *selection.Store
	keys     *keys.KeyMap
	cursor   int
	offset   int
	width    int
	height   int
	now      func() time.Time
}

// New creates a message list bound to the session's selection store.
func New(sel *selection.Store, k *keys.KeyMap, width, height int) Model {
	return Model{
		sel:    sel,
		keys:   k,
		width:  width,
		height: height,
		now:    time.Now,
	}
}

// Init returns the initial command for the list.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetMessages replaces the rows. The cursor is kept where it was when it
// still points at a row.
func (m *Model) SetMessages(messages []model.Message) {
	m.messages = messages
	if m.cursor >= len(messages) {
		m.cursor = max(len(messages)-1, 0)
	}
	m.scroll()
}

// Messages returns the rows in display order.
func (m Model) Messages() []model.Message {
	return m.messages
}

// Cursor returns the index of the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}

// Update handles keys and mouse events. Mouse coordinates must be
// relative to the list's top-left corner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Select):
			return m, m.selectRow(m.cursor)
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelDown:
			m.move(1)
		case msg.Button == tea.MouseButtonWheelUp:
			m.move(-1)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if i, ok := m.RowAt(msg.Y); ok {
				m.cursor = i
				return m, m.selectRow(i)
			}
		}
	}
	return m, nil
}

// RowAt maps a line within the list to a message index.
func (m Model) RowAt(y int) (int, bool) {
	if y < 0 || y >= m.visibleRows()*RowHeight {
		return 0, false
	}
	i := m.offset + y/RowHeight
	if i >= len(m.messages) {
		return 0, false
	}
	return i, true
}

func (m Model) selectRow(i int) tea.Cmd {
	if i < 0 || i >= len(m.messages) {
		return nil
	}
	id := m.messages[i].ID
	m.sel.Select(id)
	return func() tea.Msg { return SelectedMsg{ID: id} }
}

func (m *Model) move(delta int) {
	if len(m.messages) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.messages)-1)
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = min(m.offset, max(len(m.messages)-visible, 0))
	m.offset = max(m.offset, 0)
}

func (m Model) visibleRows() int {
	return max(m.height/RowHeight, 1)
}

// View renders the visible rows.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if len(m.messages) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No messages")
	}

	end := min(m.offset+m.visibleRows(), len(m.messages))
	var rows []string
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderRow(m.messages[i], i == m.cursor))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(strings.Join(rows, "\n"))
}

// renderRow draws one message: sender and age, subject, snippet, labels.
func (m Model) renderRow(msg model.Message, current bool) string {
	inner := max(m.width-2, 1)

	marker := " "
	if !msg.Read {
		marker = theme.UnreadMarkerStyle.Render("●")
	}
	age := humanize.RelTime(msg.Date, m.now(), "ago", "from now")
	if msg.Date.IsZero() {
		age = ""
	}
	nameRoom := max(inner-2-runewidth.StringWidth(age)-1, 1)
	name := runewidth.Truncate(msg.Name, nameRoom, "…")
	gap := max(inner-2-runewidth.StringWidth(name)-runewidth.StringWidth(age), 1)

	nameStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)
	if !msg.Read {
		nameStyle = nameStyle.Bold(true)
	}
	header := marker + " " + nameStyle.Render(name) +
		strings.Repeat(" ", gap) + theme.DimmedStyle.Render(age)

	subject := lipgloss.NewStyle().Foreground(theme.ColorWhite).
		Render(fit(msg.Subject, inner))
	snippet := theme.DimmedStyle.Render(fit(Snippet(msg.Text), inner))
	labels := renderLabels(msg.Labels, inner)

	lines := []string{header, subject, snippet, labels}
	style := theme.ListItemStyle
	if current {
		style = theme.SelectedItemStyle
	}
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// Snippet returns a single-line preview of a body.
func Snippet(text string) string {
	if r := []rune(text); len(r) > snippetRunes {
		text = string(r[:snippetRunes])
	}
	return strings.Join(strings.Fields(text), " ")
}

// renderLabels draws as many label badges as fit in width, padded to
// exactly width.
func renderLabels(labels []string, width int) string {
	var out []string
	used := 0
	for _, l := range labels {
		w := runewidth.StringWidth(l) + 2
		if used > 0 {
			w++
		}
		if used+w > width {
			break
		}
		out = append(out, theme.LabelStyle(l).Render(l))
		used += w
	}
	return strings.Join(out, " ") + strings.Repeat(" ", max(width-used, 0))
}

// fit truncates s to width and pads it with spaces to exactly width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
