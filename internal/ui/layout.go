package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nhle/avon/internal/theme"
)

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight, 0)
}

// RenderHeader renders the top bar: the brand on the left and the tab
// triggers, with active highlighted, on the right.
func (l Layout) RenderHeader(brand string, tabs []string, active int) string {
	brandRendered := theme.HeaderStyle.Render(brand)

	var triggers []string
	for i, t := range tabs {
		style := theme.TabStyle
		if i == active {
			style = theme.ActiveTabStyle
		}
		triggers = append(triggers, style.Render(t))
	}
	tabsRendered := strings.Join(triggers, "")

	gap := max(l.Width-lipgloss.Width(brandRendered)-lipgloss.Width(tabsRendered), 0)

	return lipgloss.NewStyle().MaxWidth(l.Width).Render(
		brandRendered + strings.Repeat(" ", gap) + tabsRendered,
	)
}

// TabAt returns the index of the header tab at column x, or -1.
func (l Layout) TabAt(tabs []string, x int) int {
	total := 0
	for _, t := range tabs {
		total += runewidth.StringWidth(t) + 2
	}
	start := l.Width - total
	for i, t := range tabs {
		end := start + runewidth.StringWidth(t) + 2
		if x >= start && x < end {
			return i
		}
		start = end
	}
	return -1
}

// RenderStatusBar renders the bottom status bar with keyboard hints on
// the left and an optional message on the right. The hints are cut short
// when both do not fit; the message is never clipped by them.
func (l Layout) RenderStatusBar(hints, message string) string {
	right := ""
	if message != "" {
		right = theme.StatusBarStyle.Render(message)
	}

	pad := theme.StatusBarStyle.GetHorizontalFrameSize()
	room := max(l.Width-lipgloss.Width(right)-pad, 0)
	left := ""
	if room > 0 {
		left = theme.StatusBarStyle.Render(runewidth.Truncate(hints, room, "…"))
	}

	gap := max(l.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.NewStyle().MaxWidth(l.Width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, left, filler, right),
	)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}

// RenderPlaceholder centres text in the content area.
func (l Layout) RenderPlaceholder(title, body string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render(title),
		"",
		theme.DimmedStyle.Render(body),
	)
	return lipgloss.NewStyle().
		Width(l.ContentWidth()).
		Height(l.ContentHeight()).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
