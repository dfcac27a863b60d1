package mailbox

import (
	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/store"
	"github.com/nhle/avon/internal/ui/panes"
)

// CollapseState is the density of the navigation rail.
type CollapseState int

const (
	Expanded CollapseState = iota
	Collapsed
)

// String returns the state name used in logs.
func (s CollapseState) String() string {
	if s == Collapsed {
		return "collapsed"
	}
	return "expanded"
}

// resizeStep is how far one key press moves a handle, in percent.
const resizeStep = 1.0

// collapsedShare falls back to the default rail share when size would not
// leave the rail narrower than its minimum.
func collapsedShare(size float64) float64 {
	if size <= 0 || size >= model.NavMinSize {
		return model.DefaultNavCollapsedSize
	}
	return size
}

// mailPanes declares the nav, list and detail bounds.
func mailPanes(collapsedSize float64) []panes.Pane {
	return []panes.Pane{
		{
			Min:           model.NavMinSize,
			Max:           model.NavMaxSize,
			Collapsible:   true,
			CollapsedSize: collapsedSize,
			MinCols:       3,
		},
		{Min: model.ListMinSize, MinCols: 10},
		{},
	}
}

// hydrate builds the pane group from loaded preferences and brings the
// geometry in line with the persisted collapsed flag. Nothing is written.
func hydrate(prefs model.LayoutPreferences, collapsedSize float64) (panes.Group, CollapseState) {
	g := panes.New(mailPanes(collapsedSize), prefs.PaneSizes)

	if prefs.NavCollapsed {
		g.Collapse(model.PaneNav)
	} else {
		g.Expand(model.PaneNav)
	}

	state := Expanded
	if g.IsCollapsed(model.PaneNav) {
		state = Collapsed
	}
	return g, state
}

// EffectiveLayout returns prefs as the mailbox would apply them on
// startup: sizes clamped into the pane bounds and the rail collapsed to
// collapsedSize when the flag is set. Zero collapsedSize means
// model.DefaultNavCollapsedSize.
func EffectiveLayout(prefs model.LayoutPreferences, collapsedSize float64) model.LayoutPreferences {
	g, state := hydrate(prefs, collapsedShare(collapsedSize))
	return model.LayoutPreferences{
		PaneSizes:    g.Sizes(),
		NavCollapsed: state == Collapsed,
	}
}

// layoutChanged runs after every effective change to the pane group. The
// full size triple is persisted, and the collapse state machine advances
// when the nav pane crossed its collapsed size.
func (m *Model) layoutChanged() {
	sizes := m.group.Sizes()
	store.SavePaneSizes(m.gateway, sizes)

	next := Expanded
	if m.group.IsCollapsed(model.PaneNav) {
		next = Collapsed
	}
	if next != m.state {
		m.logger.Debug("nav rail state changed", "from", m.state, "to", next)
		m.state = next
		store.SaveCollapsed(m.gateway, next == Collapsed)
	}

	m.resize()
}

// resizeHandle moves handle by delta and persists the result.
func (m *Model) resizeHandle(handle int, delta float64) {
	if m.group.Resize(handle, delta) {
		m.layoutChanged()
	}
}

// Collapse folds the nav rail to icons.
func (m *Model) Collapse() {
	if m.group.Collapse(model.PaneNav) {
		m.layoutChanged()
	}
}

// Expand opens the nav rail to its minimum width.
func (m *Model) Expand() {
	if m.group.Expand(model.PaneNav) {
		m.layoutChanged()
	}
}

// ToggleNav collapses an expanded rail and expands a collapsed one.
func (m *Model) ToggleNav() {
	if m.state == Collapsed {
		m.Expand()
		return
	}
	m.Collapse()
}

// ApplyLayout replaces the layout as if the user had dragged the panes
// there. Sizes are normalised into the pane bounds first.
func (m *Model) ApplyLayout(prefs model.LayoutPreferences) {
	changed := m.group.SetLayout(prefs.PaneSizes)
	if prefs.NavCollapsed {
		changed = m.group.Collapse(model.PaneNav) || changed
	} else {
		changed = m.group.Expand(model.PaneNav) || changed
	}
	if changed {
		m.layoutChanged()
	}
}

// ResetLayout restores the default layout.
func (m *Model) ResetLayout() {
	m.ApplyLayout(m.defaults)
}

// State returns the nav rail state.
func (m Model) State() CollapseState {
	return m.state
}

// Sizes returns the current nav/list/detail split.
func (m Model) Sizes() []float64 {
	return m.group.Sizes()
}

// Preferences returns the current layout in persisted form.
func (m Model) Preferences() model.LayoutPreferences {
	return model.LayoutPreferences{
		PaneSizes:    m.group.Sizes(),
		NavCollapsed: m.state == Collapsed,
	}
}
