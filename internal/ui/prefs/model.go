// Package prefs is the in-app form for editing the mailbox layout. A
// submitted form is applied through the pane group like any other resize.
package prefs

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/theme"
)

// SavedMsg carries the submitted layout.
type SavedMsg struct {
	Prefs model.LayoutPreferences
}

// CancelledMsg signals the form was dismissed without saving.
type CancelledMsg struct{}

// values is what the form fields bind to. It lives on the heap so the
// bindings survive copies of Model.
type values struct {
	nav       string
	list      string
	collapsed bool
}

// Model is the layout preferences form.
type Model struct {
	form   *huh.Form
	vals   *values
	cancel key.Binding
	width  int
	height int
}

// New builds the form pre-filled with current.
func New(current model.LayoutPreferences, width, height int) Model {
	vals := &values{collapsed: current.NavCollapsed}
	if len(current.PaneSizes) == model.PaneCount {
		vals.nav = formatSize(current.PaneSizes[model.PaneNav])
		vals.list = formatSize(current.PaneSizes[model.PaneList])
	}

	m := Model{
		vals:   vals,
		cancel: key.NewBinding(key.WithKeys("esc")),
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Navigation width").
				Description(fmt.Sprintf("Percent of the window, %g to %g", model.NavMinSize, model.NavMaxSize)).
				Value(&m.vals.nav).
				Validate(validateNav),
			huh.NewInput().
				Title("Message list width").
				Description(fmt.Sprintf("Percent of the window, at least %g; the detail pane takes the rest", model.ListMinSize)).
				Value(&m.vals.list).
				Validate(m.validateList),
			huh.NewConfirm().
				Title("Collapse navigation to icons").
				Affirmative("Yes").
				Negative("No").
				Value(&m.vals.collapsed),
		),
	).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	return max(min(m.width-8, 60), 20)
}

// Init starts the form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update forwards input to the form and reports completion.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.cancel) {
		return m, func() tea.Msg { return CancelledMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		prefs, err := m.result()
		if err != nil {
			return m, func() tea.Msg { return CancelledMsg{} }
		}
		return m, func() tea.Msg { return SavedMsg{Prefs: prefs} }
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, cmd
}

// result converts the bound values into preferences.
func (m Model) result() (model.LayoutPreferences, error) {
	sizes, err := ParseSizes(m.vals.nav, m.vals.list)
	if err != nil {
		return model.LayoutPreferences{}, err
	}
	return model.LayoutPreferences{PaneSizes: sizes, NavCollapsed: m.vals.collapsed}, nil
}

// View renders the form.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Layout Preferences")
	hint := theme.HelpStyle.Render("enter to confirm, esc to cancel")

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.form.View(), hint))
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(m.formWidth())
}

// ParseSizes turns the nav and list fields into a full size triple; the
// detail pane receives the remainder.
func ParseSizes(nav, list string) ([]float64, error) {
	n, err := parsePercent(nav)
	if err != nil {
		return nil, fmt.Errorf("navigation width: %w", err)
	}
	l, err := parsePercent(list)
	if err != nil {
		return nil, fmt.Errorf("message list width: %w", err)
	}
	if n+l > 100 {
		return nil, errors.New("navigation and list widths exceed 100")
	}
	return []float64{n, l, 100 - n - l}, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%g is not a percentage", v)
	}
	return v, nil
}

func validateNav(s string) error {
	v, err := parsePercent(s)
	if err != nil {
		return err
	}
	if v < model.NavMinSize || v > model.NavMaxSize {
		return fmt.Errorf("must be between %g and %g", model.NavMinSize, model.NavMaxSize)
	}
	return nil
}

func (m Model) validateList(s string) error {
	v, err := parsePercent(s)
	if err != nil {
		return err
	}
	if v < model.ListMinSize {
		return fmt.Errorf("must be at least %g", model.ListMinSize)
	}
	if n, err := parsePercent(m.vals.nav); err == nil && n+v > 100 {
		return errors.New("navigation and list widths exceed 100")
	}
	return nil
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
