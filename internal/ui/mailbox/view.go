package mailbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/theme"
	"github.com/nhle/avon/internal/ui/nav"
)

var tabLabels = [...]string{TabAll: "All mail", TabUnread: "Unread"}

// backLabel closes the detail; it sits at the right end of the detail bar.
const backLabel = "esc back"

// View renders the search bar above the three panes.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.syncSelection()

	widths := m.group.Widths()
	h := m.paneHeight()

	var cols []string
	add := func(w int, content string) {
		if w > 0 {
			cols = append(cols, box(w, h, content))
		}
	}
	add(widths[model.PaneNav], nav.View(nav.Props{
		Groups:    m.links,
		Collapsed: m.state == Collapsed,
		Width:     widths[model.PaneNav],
		Height:    h,
		Hover:     m.hover,
	}))
	cols = append(cols, m.renderHandle(0, h))
	add(widths[model.PaneList], m.renderMain(widths[model.PaneList], h))
	cols = append(cols, m.renderHandle(1, h))
	add(widths[model.PaneDetail], m.renderAside(widths[model.PaneDetail], h))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSearch(),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

// renderSearch draws the search field. On a collapsed rail the hovered
// link's tooltip is shown at the right edge.
func (m Model) renderSearch() string {
	tip := ""
	if link, ok := m.Hovered(); ok && m.state == Collapsed {
		tip = theme.TooltipStyle.Render(nav.Tooltip(link))
	}
	room := max(m.width-lipgloss.Width(tip), 0)
	return box(room, 1, m.search.View()) + tip
}

func (m Model) renderHandle(i, h int) string {
	style := theme.HandleStyle
	if m.group.Dragging() || m.focusedHandle() == i {
		style = theme.ActiveHandleStyle
	}
	return style.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
}

// renderMain draws the list with its tabs, or the detail of the selected
// message. Exactly one of the two is rendered.
func (m Model) renderMain(w, h int) string {
	sep := theme.HandleStyle.Render(strings.Repeat("─", w))

	if m.ShowingDetail() {
		back := theme.HelpStyle.Render(backLabel)
		subject := ""
		if msg := m.detail.Message(); msg != nil {
			subject = msg.Subject
		}
		room := max(w-lipgloss.Width(back)-1, 0)
		bar := runewidth.FillRight(runewidth.Truncate(subject, room, "…"), room) + " " + back
		return lipgloss.JoinVertical(lipgloss.Left, bar, sep, m.detail.View())
	}

	list := m.list
	list.SetMessages(m.Visible())

	title := lipgloss.NewStyle().Bold(true).Render("Inbox")
	tabs := m.renderTabs()
	gap := max(w-lipgloss.Width(title)-lipgloss.Width(tabs), 1)
	bar := title + strings.Repeat(" ", gap) + tabs
	return lipgloss.JoinVertical(lipgloss.Left, bar, sep, list.View())
}

func (m Model) renderTabs() string {
	var out []string
	for i, label := range tabLabels {
		style := theme.TabStyle
		if ListTab(i) == m.tab {
			style = theme.ActiveTabStyle
		}
		out = append(out, style.Render(label))
	}
	return strings.Join(out, "")
}

// onBack reports whether column x of the detail bar falls on the back
// control.
func onBack(x, w int) bool {
	start := w - runewidth.StringWidth(backLabel)
	return x >= start && x < w
}

// tabAt maps a column in the middle pane's title row to a tab.
func (m Model) tabAt(x, w int) (ListTab, bool) {
	start := w - lipgloss.Width(m.renderTabs())
	for i, label := range tabLabels {
		end := start + runewidth.StringWidth(label) + 2
		if x >= start && x < end {
			return ListTab(i), true
		}
		start = end
	}
	return 0, false
}

// renderAside draws the right pane: mailbox totals and the current split.
func (m Model) renderAside(w, h int) string {
	dim := theme.DimmedStyle
	unread := len(model.Unread(m.messages))
	sizes := m.group.Sizes()

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Inbox"),
		dim.Render(fmt.Sprintf("%d messages, %d unread", len(m.messages), unread)),
		"",
		dim.Render("Showing " + tabLabels[m.tab]),
		dim.Render(fmt.Sprintf("Layout %.0f / %.0f / %.0f", sizes[0], sizes[1], sizes[2])),
		dim.Render("Navigation " + m.state.String()),
	}
	if !m.ShowingDetail() {
		lines = append(lines, "", dim.Render("Select a message to read it."))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// box clips content to exactly w by h cells.
func box(w, h int, content string) string {
	return lipgloss.NewStyle().
		Width(w).
		MaxWidth(w).
		Height(h).
		MaxHeight(h).
		Render(content)
}
