// Package mailbox composes the navigation rail, the message list and the
// message detail into a resizable three-pane view. It owns the layout
// preferences and the collapse state of the rail.
package mailbox

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/avon/internal/keys"
	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/selection"
	"github.com/nhle/avon/internal/store"
	"github.com/nhle/avon/internal/ui/detail"
	"github.com/nhle/avon/internal/ui/maillist"
	"github.com/nhle/avon/internal/ui/nav"
	"github.com/nhle/avon/internal/ui/panes"
)

// ListTab selects which messages the list shows.
type ListTab int

const (
	TabAll ListTab = iota
	TabUnread
)

// Focus is the pane receiving key presses.
type Focus int

const (
	FocusNav Focus = iota
	FocusMain
)

// Rows above the pane group, and rows above the list or detail inside
// the middle pane.
const (
	searchHeight = 1
	toolbarRows  = 2
)

// Props is what the page hands to the mailbox.
type Props struct {
	Messages []model.Message

	// DefaultPaneSizes and DefaultCollapsed apply when nothing usable has
	// been persisted. Nil means the built-in defaults.
	DefaultPaneSizes []float64
	DefaultCollapsed *bool

	// NavCollapsedSize is the rail's share when collapsed. Zero means
	// model.DefaultNavCollapsedSize.
	NavCollapsedSize float64

	// Gateway persists the layout. Nil keeps it in memory only.
	Gateway   store.Gateway
	Selection *selection.Store
	Keys      *keys.KeyMap
	Logger    *slog.Logger

	Width  int
	Height int
}

// selectionTracker counts selection changes seen by the subscription.
type selectionTracker struct {
	version int
}

// Model is the mailbox layout controller.
type Model struct {
	messages []model.Message
	links    [][]model.NavLink
	gateway  store.Gateway
	sel      *selection.Store
	keys     *keys.KeyMap
	logger   *slog.Logger

	defaults model.LayoutPreferences
	group    panes.Group
	state    CollapseState

	tab   ListTab
	focus Focus
	hover int

	list   maillist.Model
	detail detail.Model
	search textinput.Model

	tracker     *selectionTracker
	seen        int
	unsubscribe func()

	width  int
	height int
}

// New builds the controller and reads the persisted layout once.
func New(p Props) Model {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	k := p.Keys
	if k == nil {
		k = keys.DefaultKeyMap()
	}
	gateway := p.Gateway
	if gateway == nil {
		gateway = store.MemoryGateway{}
	}
	sel := p.Selection
	if sel == nil {
		sel = selection.New()
	}

	defaults := model.DefaultLayoutPreferences()
	if len(p.DefaultPaneSizes) == model.PaneCount {
		defaults.PaneSizes = append([]float64(nil), p.DefaultPaneSizes...)
	}
	if p.DefaultCollapsed != nil {
		defaults.NavCollapsed = *p.DefaultCollapsed
	}
	prefs := store.LoadPreferences(gateway, defaults, logger)
	group, state := hydrate(prefs, collapsedShare(p.NavCollapsedSize))

	si := textinput.New()
	si.Placeholder = "Search"
	si.Prompt = "⌕ "

	tracker := &selectionTracker{}
	unsubscribe := sel.Subscribe(func(id string, ok bool) {
		tracker.version++
		logger.Debug("selection changed", "id", id, "selected", ok)
	})

	m := Model{
		messages:    p.Messages,
		links:       [][]model.NavLink{model.PrimaryLinks(), model.SecondaryLinks()},
		gateway:     gateway,
		sel:         sel,
		keys:        k,
		logger:      logger,
		defaults:    defaults,
		group:       group,
		state:       state,
		focus:       FocusMain,
		hover:       -1,
		list:        maillist.New(sel, k, 0, 0),
		detail:      detail.New(sel, k, 0, 0),
		search:      si,
		tracker:     tracker,
		seen:        -1,
		unsubscribe: unsubscribe,
	}
	m.list.SetMessages(m.Visible())
	m.SetSize(p.Width, p.Height)
	m.syncSelection()
	return m
}

// Init returns the initial command for the mailbox.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close detaches the controller from the selection store.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// SetSize updates the mailbox dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(width-4, 1)
	m.group.SetWidth(width)
	m.resize()
}

// resize pushes the middle pane's dimensions down to the list and detail.
func (m *Model) resize() {
	widths := m.group.Widths()
	h := max(m.paneHeight()-toolbarRows, 0)
	m.list.SetSize(widths[model.PaneList], h)
	m.detail.SetSize(widths[model.PaneList], h)
}

func (m Model) paneHeight() int {
	return max(m.height-searchHeight, 0)
}

// Update handles messages for the mailbox.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	}
	m.syncSelection()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusLeft):
		m.focus = FocusNav
		if m.hover < 0 {
			m.hover = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusRight):
		m.focus = FocusMain
		m.hover = -1
		return m, nil

	case key.Matches(msg, m.keys.ShrinkPane):
		m.resizeHandle(m.focusedHandle(), -resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.GrowPane):
		m.resizeHandle(m.focusedHandle(), resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.ToggleNav):
		m.ToggleNav()
		return m, nil

	case key.Matches(msg, m.keys.ResetLayout):
		m.ResetLayout()
		return m, nil

	case key.Matches(msg, m.keys.NextListTab):
		if !m.ShowingDetail() {
			m.SetTab((m.tab + 1) % 2)
		}
		return m, nil
	}

	if m.focus == FocusNav {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.hover = min(m.hover+1, nav.Count(m.links)-1)
		case key.Matches(msg, m.keys.Up):
			m.hover = max(m.hover-1, 0)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.ShowingDetail() {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// focusedHandle is the handle on the right edge of the focused pane.
func (m Model) focusedHandle() int {
	if m.focus == FocusNav {
		return 0
	}
	return 1
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.group.Dragging() {
		switch msg.Action {
		case tea.MouseActionMotion:
			if m.group.DragTo(msg.X) {
				m.layoutChanged()
			}
		case tea.MouseActionRelease:
			m.group.Release()
		}
		return m, nil
	}

	y := msg.Y - searchHeight
	if y < 0 {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.group.Press(msg.X) {
		return m, nil
	}

	widths := m.group.Widths()
	navRight := widths[model.PaneNav]
	mainLeft := navRight + 1
	mainRight := mainLeft + widths[model.PaneList]

	switch {
	case msg.X < navRight:
		m.hover = -1
		if i, ok := nav.LinkAt(m.links, y); ok {
			m.hover = i
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.focus = FocusNav
		}
		return m, nil

	case msg.X >= mainLeft && msg.X < mainRight:
		m.hover = -1
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.focus = FocusMain
			if y == 0 && !m.ShowingDetail() {
				if tab, ok := m.tabAt(msg.X-mainLeft, widths[model.PaneList]); ok {
					m.SetTab(tab)
				}
				return m, nil
			}
			if y == 0 && onBack(msg.X-mainLeft, widths[model.PaneList]) {
				m.sel.Clear()
				return m, nil
			}
		}
		if y < toolbarRows {
			return m, nil
		}
		inner := msg
		inner.X -= mainLeft
		inner.Y = y - toolbarRows

		var cmd tea.Cmd
		if m.ShowingDetail() {
			m.detail, cmd = m.detail.Update(inner)
		} else {
			m.list, cmd = m.list.Update(inner)
		}
		return m, cmd
	}

	m.hover = -1
	return m, nil
}

// syncSelection points the detail view at the selected message whenever
// the selection store reported a change.
func (m *Model) syncSelection() {
	if m.seen == m.tracker.version {
		return
	}
	m.seen = m.tracker.version

	id, ok := m.sel.Current()
	if !ok {
		m.detail.SetMessage(nil)
		return
	}
	m.detail.SetMessage(model.FindMessage(m.messages, id))
}

// SetTab switches the list between all and unread messages.
func (m *Model) SetTab(tab ListTab) {
	m.tab = tab
	m.list.SetMessages(m.Visible())
}

// Tab returns the active list tab.
func (m Model) Tab() ListTab {
	return m.tab
}

// Focus returns the focused pane.
func (m Model) Focus() Focus {
	return m.focus
}

// Visible returns the messages the list shows for the active tab, in
// input order. It is recomputed on every call.
func (m Model) Visible() []model.Message {
	if m.tab == TabUnread {
		return model.Unread(m.messages)
	}
	return m.messages
}

// ShowingDetail reports whether the middle pane shows the message detail
// rather than the list.
func (m Model) ShowingDetail() bool {
	_, ok := m.sel.Current()
	return ok
}

// Hovered returns the nav link under the cursor.
func (m Model) Hovered() (model.NavLink, bool) {
	return nav.At(m.links, m.hover)
}
