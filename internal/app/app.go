package app

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/avon/internal/keys"
	"github.com/nhle/avon/internal/model"
	"github.com/nhle/avon/internal/selection"
	"github.com/nhle/avon/internal/store"
	"github.com/nhle/avon/internal/ui"
	"github.com/nhle/avon/internal/ui/command"
	"github.com/nhle/avon/internal/ui/detail"
	helpview "github.com/nhle/avon/internal/ui/help"
	"github.com/nhle/avon/internal/ui/mailbox"
	"github.com/nhle/avon/internal/ui/maillist"
	"github.com/nhle/avon/internal/ui/prefs"
)

// brand is shown at the left of the header.
const brand = "avon"

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewMain ViewState = iota
	ViewHelp
	ViewCommand
	ViewPrefs
)

// Tab is one of the top-level sections.
type Tab int

const (
	TabMailbox Tab = iota
	TabJobTracker
	TabSpreadsheet
)

var tabNames = []string{"Mailbox", "Job Tracker", "Spreadsheet"}

// Options configures the root model.
type Options struct {
	Messages []model.Message
	Gateway  store.Gateway
	Layout   model.LayoutConfig
	Mouse    bool
	Logger   *slog.Logger
}

// Model is the root Bubble Tea model that routes input between the
// top-level tabs and the overlays.
type Model struct {
	currentView  ViewState
	previousView ViewState
	tab          Tab
	layout       ui.Layout
	keys         *keys.KeyMap
	selection    *selection.Store
	mailbox      mailbox.Model
	helpView     helpview.Model
	commandView  command.Model
	prefsView    prefs.Model
	logger       *slog.Logger
	status       string
	ready        bool
}

// New creates the root model. One selection store is created per
// session and shared by the mailbox's list and detail views.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	k := keys.DefaultKeyMap()
	sel := selection.New()
	collapsed := opts.Layout.DefaultCollapsed

	mb := mailbox.New(mailbox.Props{
		Messages:         opts.Messages,
		DefaultPaneSizes: opts.Layout.DefaultSizes,
		DefaultCollapsed: &collapsed,
		NavCollapsedSize: opts.Layout.NavCollapsedSize,
		Gateway:          opts.Gateway,
		Selection:        sel,
		Keys:             k,
		Logger:           logger,
	})

	return Model{
		currentView: ViewMain,
		keys:        k,
		selection:   sel,
		mailbox:     mb,
		helpView:    helpview.New(k, opts.Mouse, 80, 24),
		commandView: command.New(80, 24),
		prefsView:   prefs.New(mb.Preferences(), 80, 24),
		logger:      logger,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.mailbox.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.mailbox.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		m.prefsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		cmd := m.executeCommand(command.Name(msg))
		return m, cmd

	case command.UnknownMsg:
		m.currentView = m.previousView
		m.status = fmt.Sprintf("unknown command: %s", string(msg))
		return m, nil

	case prefs.SavedMsg:
		m.currentView = ViewMain
		m.mailbox.ApplyLayout(msg.Prefs)
		m.status = "layout updated"
		return m, nil

	case prefs.CancelledMsg:
		m.currentView = ViewMain
		return m, nil

	case maillist.SelectedMsg:
		m.logger.Debug("message opened", "id", msg.ID)
		return m, nil

	case detail.DismissedMsg:
		m.logger.Debug("message closed")
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.currentView == ViewMain {
			m.status = ""
			if next, cmd, ok := m.handleGlobalKey(msg); ok {
				return next, cmd
			}
		}
		if m.currentView == ViewHelp && (key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back)) {
			m.currentView = m.previousView
			return m, nil
		}
		if m.currentView == ViewCommand && key.Matches(msg, m.keys.Back) {
			m.currentView = m.previousView
			return m, nil
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work on every tab while no overlay
// is open.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit(), true

	case key.Matches(msg, m.keys.Help):
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		cmd := m.commandView.Focus()
		return m, cmd, true

	case key.Matches(msg, m.keys.TabMailbox):
		m.tab = TabMailbox
		return m, nil, true

	case key.Matches(msg, m.keys.TabJobTracker):
		m.tab = TabJobTracker
		return m, nil, true

	case key.Matches(msg, m.keys.TabSpreadsheet):
		m.tab = TabSpreadsheet
		return m, nil, true

	case key.Matches(msg, m.keys.Preferences):
		if m.tab != TabMailbox {
			return m, nil, false
		}
		cmd := m.openPrefs()
		return m, cmd, true
	}
	return m, nil, false
}

func (m *Model) openPrefs() tea.Cmd {
	m.previousView = m.currentView
	m.currentView = ViewPrefs
	m.prefsView = prefs.New(m.mailbox.Preferences(), m.layout.ContentWidth(), m.layout.ContentHeight())
	return m.prefsView.Init()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.currentView != ViewMain {
		return m, nil
	}

	if msg.Y < m.layout.HeaderHeight {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.layout.TabAt(tabNames, msg.X); i >= 0 {
				m.tab = Tab(i)
			}
		}
		return m, nil
	}

	if m.tab != TabMailbox {
		return m, nil
	}
	inner := msg
	inner.Y -= m.layout.HeaderHeight
	var cmd tea.Cmd
	m.mailbox, cmd = m.mailbox.Update(inner)
	return m, cmd
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewMain:
		if m.tab == TabMailbox {
			m.mailbox, cmd = m.mailbox.Update(msg)
		}
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewPrefs:
		m.prefsView, cmd = m.prefsView.Update(msg)
	}

	return m, cmd
}

// executeCommand handles a command from the command palette.
func (m *Model) executeCommand(name command.Name) tea.Cmd {
	m.logger.Debug("executing command", "command", string(name))

	switch name {
	case command.Collapse:
		m.mailbox.Collapse()
	case command.Expand:
		m.mailbox.Expand()
	case command.ResetLayout:
		m.mailbox.ResetLayout()
		m.status = "layout reset"
	case command.ShowAll:
		m.tab = TabMailbox
		m.mailbox.SetTab(mailbox.TabAll)
	case command.ShowUnread:
		m.tab = TabMailbox
		m.mailbox.SetTab(mailbox.TabUnread)
	case command.Mailbox:
		m.tab = TabMailbox
	case command.JobTracker:
		m.tab = TabJobTracker
	case command.Spreadsheet:
		m.tab = TabSpreadsheet
	case command.Preferences:
		m.tab = TabMailbox
		return m.openPrefs()
	case command.Quit:
		return m.quit()
	}
	return nil
}

func (m Model) quit() tea.Cmd {
	m.mailbox.Close()
	return tea.Quit
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(brand, tabNames, int(m.tab))
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints(), m.status)

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewPrefs:
		return m.prefsView.View()
	}

	switch m.tab {
	case TabJobTracker:
		return m.layout.RenderPlaceholder("Job Tracker", "Nothing to track yet.")
	case TabSpreadsheet:
		return m.layout.RenderPlaceholder("Spreadsheet", "No sheets yet.")
	default:
		return m.mailbox.View()
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewPrefs:
		return "enter next | esc cancel"
	}

	if m.tab != TabMailbox {
		return "1 mailbox | 2 jobs | 3 sheet | q quit | ? help"
	}
	if m.mailbox.ShowingDetail() {
		return "esc back | j/k scroll | [ nav | < > resize | q quit | ? help"
	}
	return "enter open | tab all/unread | h/l focus | [ nav | < > resize | = reset | q quit | ? help"
}

// Tab returns the active top-level tab.
func (m Model) Tab() Tab {
	return m.tab
}

// CurrentView returns the active view.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Mailbox returns the mailbox controller.
func (m Model) Mailbox() mailbox.Model {
	return m.mailbox
}
